package entities_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
)

var _ = Describe("Point", func() {
	newPoint := func() *entities.Point {
		return &entities.Point{
			OwnerID:  "seller-1",
			Lat:      6.2442,
			Lng:      -75.5812,
			Title:    entities.DefaultPointTitle,
			Category: entities.DefaultCategoryID,
		}
	}

	Describe("Validate", func() {
		It("aceita um ponto completo", func() {
			Expect(newPoint().Validate()).To(Succeed())
		})

		It("exige dono", func() {
			p := newPoint()
			p.OwnerID = ""
			Expect(p.Validate()).To(HaveOccurred())
		})

		It("exige título", func() {
			p := newPoint()
			p.Title = ""
			Expect(p.Validate()).To(HaveOccurred())
		})

		It("rejeita latitude fora do intervalo", func() {
			p := newPoint()
			p.Lat = 90.1
			Expect(p.Validate()).To(HaveOccurred())

			p.Lat = -90.1
			Expect(p.Validate()).To(HaveOccurred())
		})

		It("rejeita longitude fora do intervalo", func() {
			p := newPoint()
			p.Lng = 180.1
			Expect(p.Validate()).To(HaveOccurred())

			p.Lng = -180.1
			Expect(p.Validate()).To(HaveOccurred())
		})

		It("aceita os extremos do intervalo", func() {
			p := newPoint()
			p.Lat, p.Lng = 90, -180
			Expect(p.Validate()).To(Succeed())
		})

		It("rejeita categoria fora do registry", func() {
			p := newPoint()
			p.Category = "spaceship"
			Expect(p.Validate()).To(HaveOccurred())
		})
	})

	Describe("IsOwnedBy", func() {
		It("reconhece o dono", func() {
			p := newPoint()
			Expect(p.IsOwnedBy("seller-1")).To(BeTrue())
			Expect(p.IsOwnedBy("seller-2")).To(BeFalse())
		})
	})

	Describe("HasImage", func() {
		It("nil e string vazia contam como sem imagem", func() {
			p := newPoint()
			Expect(p.HasImage()).To(BeFalse())

			empty := ""
			p.ImageURL = &empty
			Expect(p.HasImage()).To(BeFalse())

			url := "http://storage.local/points-bucket/points/p1/1_foto.jpg"
			p.ImageURL = &url
			Expect(p.HasImage()).To(BeTrue())
		})
	})
})

var _ = Describe("Role", func() {
	It("customer e seller são as únicas roles válidas", func() {
		Expect(entities.IsValidRole(entities.RoleCustomer)).To(BeTrue())
		Expect(entities.IsValidRole(entities.RoleSeller)).To(BeTrue())
		Expect(entities.IsValidRole("admin")).To(BeFalse())
		Expect(entities.IsValidRole("")).To(BeFalse())
	})

	It("somente seller escreve pontos", func() {
		Expect(entities.RoleSeller.HasPermission(entities.PermissionPointWrite)).To(BeTrue())
		Expect(entities.RoleCustomer.HasPermission(entities.PermissionPointWrite)).To(BeFalse())
	})

	It("ambas as roles leem pontos", func() {
		Expect(entities.RoleSeller.HasPermission(entities.PermissionPointRead)).To(BeTrue())
		Expect(entities.RoleCustomer.HasPermission(entities.PermissionPointRead)).To(BeTrue())
	})
})
