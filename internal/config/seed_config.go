package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SeedImage struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

type SeedSubCategory struct {
	ID    uint      `yaml:"id"`
	Title string    `yaml:"title"`
	Image SeedImage `yaml:"image"`
}

type SeedCategory struct {
	ID            uint              `yaml:"id"`
	Title         string            `yaml:"title"`
	Image         SeedImage         `yaml:"image"`
	SubCategories []SeedSubCategory `yaml:"subcategories"`
}

type SeedTag struct {
	ID   uint   `yaml:"id"`
	Name string `yaml:"name"`
}

type SeedSpecification struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type SeedProduct struct {
	ID              uint                `yaml:"id"`
	Category        uint                `yaml:"category"`
	Price           string              `yaml:"price"`
	Count           int                 `yaml:"count"`
	Date            string              `yaml:"date"`
	Title           string              `yaml:"title"`
	Description     string              `yaml:"description"`
	FullDescription string              `yaml:"full_description"`
	FreeDelivery    bool                `yaml:"free_delivery"`
	Available       bool                `yaml:"available"`
	LimitedEdition  bool                `yaml:"limited_edition"`
	SortIndex       int                 `yaml:"sort_index"`
	SalesCount      int                 `yaml:"sales_count"`
	Rating          string              `yaml:"rating"`
	Tags            []uint              `yaml:"tags"`
	Images          []SeedImage         `yaml:"images"`
	Specifications  []SeedSpecification `yaml:"specifications"`
}

type SeedSale struct {
	ID        uint   `yaml:"id"`
	Product   uint   `yaml:"product"`
	Price     string `yaml:"price"`
	SalePrice string `yaml:"sale_price"`
	DateFrom  string `yaml:"date_from"`
	DateTo    string `yaml:"date_to"`
}

type SeedBanner struct {
	ID      uint `yaml:"id"`
	Product uint `yaml:"product"`
}

type SeedConfig struct {
	Categories []SeedCategory `yaml:"categories"`
	Tags       []SeedTag      `yaml:"tags"`
	Products   []SeedProduct  `yaml:"products"`
	Sales      []SeedSale     `yaml:"sales"`
	Banners    []SeedBanner   `yaml:"banners"`
}

func LoadSeedConfig(path string) (*SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeedConfig(data)
}

func ParseSeedConfig(data []byte) (*SeedConfig, error) {
	seed := &SeedConfig{}
	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, err
	}
	return seed, nil
}
