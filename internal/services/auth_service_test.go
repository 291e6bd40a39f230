package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/usermanager-backend/internal/domain/errors"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/security"
	"github.com/rafabene/usermanager-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		f       *fixture
		ctx     context.Context
		issuer  *security.JWTIssuer
		service *services.AuthService
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
		issuer = security.NewJWTIssuer("test-secret", "usermanager-test", time.Hour)
		service = services.NewAuthService(f.users, f.hasher, issuer, f.validator, f.logger)

		_, err := f.userService.CreateUser(ctx, aliceInput())
		Expect(err).NotTo(HaveOccurred())
	})

	It("emite token e registra o último acesso", func() {
		result, err := service.Login(ctx, services.LoginInput{Username: "alice", Password: "s3cretpass"})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Token.Value).NotTo(BeEmpty())
		Expect(result.User.LastLogin).NotTo(BeNil())

		claims, err := issuer.Parse(result.Token.Value)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Username).To(Equal("alice"))

		stored, err := f.users.FindByUsername(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.LastLogin).NotTo(BeNil())
	})

	It("normaliza o username como na criação", func() {
		result, err := service.Login(ctx, services.LoginInput{Username: "  alice ", Password: "s3cretpass"})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.User.Username).To(Equal("alice"))
	})

	It("rejeita senha errada", func() {
		_, err := service.Login(ctx, services.LoginInput{Username: "alice", Password: "wrong-password"})
		Expect(domainerrors.IsKind(err, domainerrors.KindUnauthorized)).To(BeTrue())
	})

	It("rejeita usuário inexistente com o mesmo erro", func() {
		_, err := service.Login(ctx, services.LoginInput{Username: "nobody", Password: "s3cretpass"})
		Expect(domainerrors.IsKind(err, domainerrors.KindUnauthorized)).To(BeTrue())
	})

	It("rejeita conta suspensa", func() {
		user, err := f.users.FindByUsername(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		_, err = f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{Status: ptr("suspended")})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Login(ctx, services.LoginInput{Username: "alice", Password: "s3cretpass"})
		Expect(domainerrors.IsKind(err, domainerrors.KindForbidden)).To(BeTrue())
	})

	It("valida credenciais ausentes", func() {
		_, err := service.Login(ctx, services.LoginInput{})
		Expect(domainerrors.As(err).Violations).To(HaveLen(2))
	})
})
