package entities

// Category representa uma categoria fixa de ponto.
// A tabela é imutável e definida em tempo de build; nada disso vai ao banco.
type Category struct {
	ID      string
	Name    string
	Emblem  string
	Color   string
	IconURL string
}

// MarkerIcon descreve o ícone de marcador usado pelo cliente de mapa
type MarkerIcon struct {
	IconURL     string
	IconSize    [2]int
	IconAnchor  [2]int
	PopupAnchor [2]int
}

// DefaultCategoryID é a categoria usada quando nenhuma foi informada
const DefaultCategoryID = "other"

// Categories é o registry estático de categorias.
// A última entrada ("other") é o fallback de CategoryByID.
var Categories = []Category{
	{ID: "restaurant", Name: "Restaurante", Emblem: "🍽️", Color: "#FF6B6B", IconURL: "https://cdn-icons-png.flaticon.com/512/3480/3480822.png"},
	{ID: "store", Name: "Tienda", Emblem: "🏪", Color: "#4ECDC4", IconURL: "https://cdn-icons-png.flaticon.com/512/2331/2331966.png"},
	{ID: "service", Name: "Servicio", Emblem: "🔧", Color: "#95E1D3", IconURL: "https://cdn-icons-png.flaticon.com/512/3050/3050155.png"},
	{ID: "health", Name: "Salud", Emblem: "⚕️", Color: "#F38181", IconURL: "https://cdn-icons-png.flaticon.com/512/2913/2913133.png"},
	{ID: "education", Name: "Educación", Emblem: "📚", Color: "#AA96DA", IconURL: "https://cdn-icons-png.flaticon.com/512/3976/3976625.png"},
	{ID: "entertainment", Name: "Entretenimiento", Emblem: "🎭", Color: "#FCBAD3", IconURL: "https://cdn-icons-png.flaticon.com/512/2593/2593549.png"},
	{ID: "hotel", Name: "Hotel/Hospedaje", Emblem: "🏨", Color: "#FFFFD2", IconURL: "https://cdn-icons-png.flaticon.com/512/2910/2910769.png"},
	{ID: "transport", Name: "Transporte", Emblem: "🚗", Color: "#A8DADC", IconURL: "https://cdn-icons-png.flaticon.com/512/3448/3448339.png"},
	{ID: "other", Name: "Otro", Emblem: "📍", Color: "#B4B4B4", IconURL: "https://cdn-icons-png.flaticon.com/512/854/854866.png"},
}

// CategoryByID busca uma categoria pelo id.
// Nunca devolve ausência: id vazio ou desconhecido cai em "other".
func CategoryByID(id string) Category {
	for _, cat := range Categories {
		if cat.ID == id {
			return cat
		}
	}
	return Categories[len(Categories)-1]
}

// IsValidCategory verifica se o id existe no registry
func IsValidCategory(id string) bool {
	for _, cat := range Categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}

// MarkerIconFor devolve o ícone de marcador da categoria do ponto
func MarkerIconFor(categoryID string) MarkerIcon {
	cat := CategoryByID(categoryID)
	return MarkerIcon{
		IconURL:     cat.IconURL,
		IconSize:    [2]int{35, 35},
		IconAnchor:  [2]int{17, 35},
		PopupAnchor: [2]int{0, -35},
	}
}
