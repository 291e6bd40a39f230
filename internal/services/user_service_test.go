package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/usermanager-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/usermanager-backend/internal/domain/errors"
	"github.com/rafabene/usermanager-backend/internal/domain/repositories"
	"github.com/rafabene/usermanager-backend/internal/services"
)

// failingProfiles simula uma falha na inserção do perfil
type failingProfiles struct {
	repositories.ProfileRepository
}

func (failingProfiles) Create(context.Context, *entities.UserProfile) error {
	return errors.New("disk full")
}

// blindChecker responde que username e email estão livres, forçando a
// corrida a ser resolvida pelo índice único
type blindChecker struct {
	repositories.UserRepository
}

func (blindChecker) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }
func (blindChecker) ExistsByEmail(context.Context, string) (bool, error)    { return false, nil }

var _ = Describe("UserService", func() {
	var (
		f   *fixture
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
	})

	Describe("CreateUser", func() {
		It("cria usuário e perfil com valores padrão", func() {
			input := aliceInput()
			input.Profile.DateOfBirth = ptr("1990-05-17")

			result, err := f.userService.CreateUser(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.User.ID).NotTo(BeZero())
			Expect(result.User.Role).To(Equal(entities.RoleUser))
			Expect(result.User.Status).To(Equal(entities.StatusActive))
			Expect(result.Profile.UserID).To(Equal(result.User.ID))
			Expect(result.Profile.DateOfBirth.Format("2006-01-02")).To(Equal("1990-05-17"))
			Expect(f.countProfiles()).To(BeEquivalentTo(1))
		})

		It("nunca armazena a senha em texto puro", func() {
			result, err := f.userService.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())

			stored, err := f.users.FindByID(ctx, result.User.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.PasswordHash).NotTo(Equal("s3cretpass"))
			Expect(stored.PasswordHash).NotTo(BeEmpty())
			Expect(f.hasher.Verify("s3cretpass", stored.PasswordHash)).To(BeTrue())
		})

		It("normaliza o email", func() {
			input := aliceInput()
			input.Email = "  A@X.IO "

			result, err := f.userService.CreateUser(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Email.String()).To(Equal("a@x.io"))
		})

		It("reporta todas as violações sem efeitos colaterais", func() {
			input := aliceInput()
			input.Username = ""
			input.Email = ""

			_, err := f.userService.CreateUser(ctx, input)
			failure := domainerrors.As(err)
			Expect(failure).NotTo(BeNil())
			Expect(failure.Kind).To(Equal(domainerrors.KindValidation))
			Expect(failure.Violations).To(HaveLen(2))
			Expect(f.countUsers()).To(BeZero())
		})

		It("exige o perfil", func() {
			input := aliceInput()
			input.Profile = nil

			_, err := f.userService.CreateUser(ctx, input)
			Expect(domainerrors.IsKind(err, domainerrors.KindValidation)).To(BeTrue())
			Expect(domainerrors.As(err).Violations[0].Field).To(Equal("profile"))
		})

		It("rejeita senha acima de 72 bytes como validação", func() {
			input := aliceInput()
			input.Password = strings.Repeat("é", 40)

			_, err := f.userService.CreateUser(ctx, input)
			failure := domainerrors.As(err)
			Expect(failure).NotTo(BeNil())
			Expect(failure.Kind).To(Equal(domainerrors.KindValidation))
			Expect(failure.Violations[0].Field).To(Equal("password"))
			Expect(failure.Violations[0].Type).To(Equal(domainerrors.ViolationLength))
			Expect(f.countUsers()).To(BeZero())
		})

		It("aceita senha multibyte dentro de 72 bytes", func() {
			input := aliceInput()
			input.Password = strings.Repeat("é", 36)

			_, err := f.userService.CreateUser(ctx, input)
			Expect(err).NotTo(HaveOccurred())
		})

		It("aceita URL de foto até 2048 caracteres", func() {
			prefix := "https://cdn.x.io/"
			input := aliceInput()
			input.Profile.ProfilePictureURL = ptr(prefix + strings.Repeat("a", 2049-len(prefix)))
			_, err := f.userService.CreateUser(ctx, input)
			Expect(domainerrors.IsKind(err, domainerrors.KindValidation)).To(BeTrue())

			input.Profile.ProfilePictureURL = ptr(prefix + strings.Repeat("a", 2048-len(prefix)))
			result, err := f.userService.CreateUser(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(*result.Profile.ProfilePictureURL).To(HaveLen(2048))
		})

		It("remove espaços do username antes de checar unicidade", func() {
			input := aliceInput()
			input.Username = " alice "
			result, err := f.userService.CreateUser(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Username).To(Equal("alice"))

			exists, err := f.userService.UsernameExists(ctx, " alice ")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			again := aliceInput()
			again.Email = "other@x.io"
			_, err = f.userService.CreateUser(ctx, again)
			Expect(errors.Is(err, domainerrors.ErrUsernameAlreadyExists)).To(BeTrue())
		})

		It("trata username só com espaços como ausente", func() {
			input := aliceInput()
			input.Username = "   "

			_, err := f.userService.CreateUser(ctx, input)
			failure := domainerrors.As(err)
			Expect(failure).NotTo(BeNil())
			Expect(failure.Violations[0].Type).To(Equal(domainerrors.ViolationRequired))
		})

		It("rejeita username repetido mesmo após soft delete", func() {
			first, err := f.userService.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())
			Expect(f.userService.SoftDeleteUser(ctx, first.User.ID)).To(Succeed())

			input := aliceInput()
			input.Email = "other@x.io"
			_, err = f.userService.CreateUser(ctx, input)
			Expect(domainerrors.IsKind(err, domainerrors.KindConflict)).To(BeTrue())
			Expect(errors.Is(err, domainerrors.ErrUsernameAlreadyExists)).To(BeTrue())
		})

		It("rejeita email repetido", func() {
			_, err := f.userService.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())

			input := aliceInput()
			input.Username = "alice2"
			input.Email = "A@x.io"
			_, err = f.userService.CreateUser(ctx, input)
			Expect(errors.Is(err, domainerrors.ErrEmailAlreadyExists)).To(BeTrue())
			Expect(f.countUsers()).To(BeEquivalentTo(1))
		})

		It("desfaz o usuário quando o perfil falha", func() {
			svc := f.newUserService(f.users, failingProfiles{f.profiles})

			_, err := svc.CreateUser(ctx, aliceInput())
			Expect(domainerrors.IsKind(err, domainerrors.KindPersistence)).To(BeTrue())
			Expect(f.countUsers()).To(BeZero())
			Expect(f.countProfiles()).To(BeZero())
		})

		It("traduz a violação do índice único em conflito", func() {
			svc := f.newUserService(blindChecker{f.users}, f.profiles)

			_, err := svc.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())

			input := aliceInput()
			input.Email = "other@x.io"
			_, err = svc.CreateUser(ctx, input)
			Expect(domainerrors.IsKind(err, domainerrors.KindConflict)).To(BeTrue())
			Expect(errors.Is(err, domainerrors.ErrUsernameAlreadyExists)).To(BeTrue())
			Expect(f.countUsers()).To(BeEquivalentTo(1))
		})

		It("permite apenas uma criação em requisições concorrentes", func() {
			const workers = 8
			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				conflicts int
			)

			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer GinkgoRecover()

					input := aliceInput()
					input.Email = fmt.Sprintf("alice%d@x.io", i)
					_, err := f.userService.CreateUser(ctx, input)

					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						successes++
					case domainerrors.IsKind(err, domainerrors.KindConflict):
						conflicts++
					}
				}(i)
			}
			wg.Wait()

			Expect(successes).To(Equal(1))
			Expect(conflicts).To(Equal(workers - 1))
			Expect(f.countUsers()).To(BeEquivalentTo(1))
			Expect(f.countProfiles()).To(BeEquivalentTo(1))
		})
	})

	Describe("GetUser", func() {
		It("retorna not found para id inexistente", func() {
			_, err := f.userService.GetUser(ctx, 999, false)
			Expect(domainerrors.IsKind(err, domainerrors.KindNotFound)).To(BeTrue())
		})

		It("oculta deletados exceto com includeDeleted", func() {
			created, err := f.userService.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())
			id := created.User.ID
			Expect(f.userService.SoftDeleteUser(ctx, id)).To(Succeed())

			_, err = f.userService.GetUser(ctx, id, false)
			Expect(domainerrors.IsKind(err, domainerrors.KindNotFound)).To(BeTrue())

			user, err := f.userService.GetUser(ctx, id, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.IsDeleted()).To(BeTrue())

			profile, err := f.profiles.FindByUserID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile).To(BeNil())
		})
	})

	Describe("UpdateUser", func() {
		var user *entities.User

		BeforeEach(func() {
			created, err := f.userService.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())
			user = created.User
		})

		It("rejeita username antes de validar os demais campos", func() {
			_, err := f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{
				Username: ptr("bob"),
				Email:    ptr("not-an-email"),
			})
			Expect(domainerrors.IsKind(err, domainerrors.KindConflict)).To(BeTrue())
			Expect(errors.Is(err, domainerrors.ErrUsernameImmutable)).To(BeTrue())

			stored, err := f.userService.GetUser(ctx, user.ID, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Username).To(Equal("alice"))
		})

		It("atualiza email, role e status", func() {
			updated, err := f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{
				Email:  ptr("New@X.io"),
				Role:   ptr("manager"),
				Status: ptr("suspended"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Email.String()).To(Equal("new@x.io"))
			Expect(updated.Role).To(Equal(entities.RoleManager))
			Expect(updated.Status).To(Equal(entities.StatusSuspended))
		})

		It("gera novo hash quando a senha muda", func() {
			before, err := f.users.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{Password: ptr("another-pass")})
			Expect(err).NotTo(HaveOccurred())

			after, err := f.users.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.PasswordHash).NotTo(Equal(before.PasswordHash))
			Expect(f.hasher.Verify("another-pass", after.PasswordHash)).To(BeTrue())
		})

		It("rejeita email de outro usuário", func() {
			input := aliceInput()
			input.Username = "bob"
			input.Email = "b@x.io"
			_, err := f.userService.CreateUser(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			_, err = f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{Email: ptr("b@x.io")})
			Expect(errors.Is(err, domainerrors.ErrEmailAlreadyExists)).To(BeTrue())
		})

		It("rejeita nova senha acima de 72 bytes", func() {
			_, err := f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{Password: ptr(strings.Repeat("é", 40))})
			Expect(domainerrors.IsKind(err, domainerrors.KindValidation)).To(BeTrue())
		})

		It("não grava nada quando nenhum campo é enviado", func() {
			before, err := f.users.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())

			same, err := f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(same.UpdatedAt).To(BeTemporally("==", before.UpdatedAt))

			_, err = f.userService.UpdateUser(ctx, 999, services.UpdateUserInput{})
			Expect(domainerrors.IsKind(err, domainerrors.KindNotFound)).To(BeTrue())
		})

		It("valida os campos enviados", func() {
			_, err := f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{Role: ptr("root")})
			Expect(domainerrors.IsKind(err, domainerrors.KindValidation)).To(BeTrue())
		})

		It("retorna not found para usuário deletado", func() {
			Expect(f.userService.SoftDeleteUser(ctx, user.ID)).To(Succeed())
			_, err := f.userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{Role: ptr("admin")})
			Expect(domainerrors.IsKind(err, domainerrors.KindNotFound)).To(BeTrue())
		})
	})

	Describe("exclusão", func() {
		It("soft delete duas vezes retorna not found", func() {
			created, err := f.userService.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())

			Expect(f.userService.SoftDeleteUser(ctx, created.User.ID)).To(Succeed())
			err = f.userService.SoftDeleteUser(ctx, created.User.ID)
			Expect(domainerrors.IsKind(err, domainerrors.KindNotFound)).To(BeTrue())
		})

		It("force delete remove usuário e perfil, inclusive já deletados", func() {
			created, err := f.userService.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())
			id := created.User.ID

			Expect(f.userService.SoftDeleteUser(ctx, id)).To(Succeed())
			Expect(f.userService.ForceDeleteUser(ctx, id)).To(Succeed())

			_, err = f.userService.GetUser(ctx, id, true)
			Expect(domainerrors.IsKind(err, domainerrors.KindNotFound)).To(BeTrue())
			Expect(f.countUsers()).To(BeZero())
			Expect(f.countProfiles()).To(BeZero())

			err = f.userService.ForceDeleteUser(ctx, id)
			Expect(domainerrors.IsKind(err, domainerrors.KindNotFound)).To(BeTrue())

			exists, err := f.userService.UsernameExists(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("verificações de existência", func() {
		It("consulta username e email", func() {
			_, err := f.userService.CreateUser(ctx, aliceInput())
			Expect(err).NotTo(HaveOccurred())

			exists, err := f.userService.UsernameExists(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = f.userService.EmailExists(ctx, "A@X.IO")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = f.userService.EmailExists(ctx, "nobody@x.io")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("exige o parâmetro", func() {
			_, err := f.userService.UsernameExists(ctx, "  ")
			Expect(domainerrors.IsKind(err, domainerrors.KindValidation)).To(BeTrue())
		})
	})

	Describe("ListUsers", func() {
		It("filtra por status e pagina", func() {
			for i := 0; i < 3; i++ {
				input := aliceInput()
				input.Username = fmt.Sprintf("user%d", i)
				input.Email = fmt.Sprintf("user%d@x.io", i)
				if i == 0 {
					input.Status = "inactive"
				}
				_, err := f.userService.CreateUser(ctx, input)
				Expect(err).NotTo(HaveOccurred())
			}

			inactive := entities.StatusInactive
			users, err := f.userService.ListUsers(ctx, repositories.UserFilters{Status: &inactive})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Username).To(Equal("user0"))

			users, err = f.userService.ListUsers(ctx, repositories.UserFilters{PageSize: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
		})
	})
})
