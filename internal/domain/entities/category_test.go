package entities_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
)

var _ = Describe("Category", func() {
	Describe("CategoryByID", func() {
		It("encontra a categoria pelo id", func() {
			cat := entities.CategoryByID("restaurant")
			Expect(cat.Name).To(Equal("Restaurante"))
			Expect(cat.Color).To(Equal("#FF6B6B"))
		})

		It("id desconhecido cai no fallback 'other'", func() {
			cat := entities.CategoryByID("spaceship")
			Expect(cat.ID).To(Equal(entities.DefaultCategoryID))
		})

		It("id vazio cai no fallback 'other'", func() {
			cat := entities.CategoryByID("")
			Expect(cat.ID).To(Equal(entities.DefaultCategoryID))
		})
	})

	Describe("Registry", func() {
		It("a última entrada é o fallback", func() {
			last := entities.Categories[len(entities.Categories)-1]
			Expect(last.ID).To(Equal(entities.DefaultCategoryID))
		})

		It("toda categoria tem cor e ícone", func() {
			for _, cat := range entities.Categories {
				Expect(cat.Color).To(HavePrefix("#"))
				Expect(cat.IconURL).To(HavePrefix("https://"))
			}
		})

		It("valida ids do registry e rejeita o resto", func() {
			for _, cat := range entities.Categories {
				Expect(entities.IsValidCategory(cat.ID)).To(BeTrue())
			}
			Expect(entities.IsValidCategory("all")).To(BeFalse())
			Expect(entities.IsValidCategory("")).To(BeFalse())
		})
	})

	Describe("MarkerIconFor", func() {
		It("usa o ícone da categoria com as dimensões do marcador", func() {
			marker := entities.MarkerIconFor("store")
			Expect(marker.IconURL).To(Equal(entities.CategoryByID("store").IconURL))
			Expect(marker.IconSize).To(Equal([2]int{35, 35}))
			Expect(marker.IconAnchor).To(Equal([2]int{17, 35}))
			Expect(marker.PopupAnchor).To(Equal([2]int{0, -35}))
		})

		It("categoria desconhecida usa o ícone do fallback", func() {
			marker := entities.MarkerIconFor("spaceship")
			Expect(marker.IconURL).To(Equal(entities.CategoryByID("other").IconURL))
		})
	})
})
