package services_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/usermanager-backend/internal/services"
)

var _ = Describe("UpdateUserInput", func() {
	DescribeTable("detecta a chave username",
		func(body string, expected bool) {
			var input services.UpdateUserInput
			Expect(json.Unmarshal([]byte(body), &input)).To(Succeed())
			Expect(input.HasUsername()).To(Equal(expected))
		},
		Entry("valor preenchido", `{"username":"bob"}`, true),
		Entry("valor nulo", `{"username":null}`, true),
		Entry("ausente", `{"role":"admin"}`, false),
	)

	It("decodifica os demais campos", func() {
		var input services.UpdateUserInput
		Expect(json.Unmarshal([]byte(`{"email":"b@x.io","status":"inactive"}`), &input)).To(Succeed())
		Expect(*input.Email).To(Equal("b@x.io"))
		Expect(*input.Status).To(Equal("inactive"))
		Expect(input.Role).To(BeNil())
		Expect(input.IsEmpty()).To(BeFalse())
	})

	It("propaga erros de sintaxe", func() {
		var input services.UpdateUserInput
		Expect(json.Unmarshal([]byte(`{"email":`), &input)).NotTo(Succeed())
	})
})
