package models

type MenuItem struct {
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	PrepMinutes float64 `json:"prep_minutes" yaml:"prep"`
}

// MenuCategory is a cuisine key into the menu catalog.
type MenuCategory string

const (
	MenuPizza         MenuCategory = "pizza"
	MenuBurger        MenuCategory = "burger"
	MenuMexican       MenuCategory = "mexican"
	MenuChinese       MenuCategory = "chinese"
	MenuJapanese      MenuCategory = "japanese"
	MenuKorean        MenuCategory = "korean"
	MenuThai          MenuCategory = "thai"
	MenuVietnamese    MenuCategory = "vietnamese"
	MenuIndian        MenuCategory = "indian"
	MenuItalian       MenuCategory = "italian"
	MenuMediterranean MenuCategory = "mediterranean"
	MenuCafe          MenuCategory = "cafe"
	MenuBakery        MenuCategory = "bakery"
	MenuBBQ           MenuCategory = "bbq"
	MenuSeafood       MenuCategory = "seafood"
	MenuBreakfast     MenuCategory = "breakfast"
	MenuAmerican      MenuCategory = "american"
	MenuDefault       MenuCategory = "default"
)
