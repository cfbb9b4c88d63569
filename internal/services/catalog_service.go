package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yukikurage/halisaha-api/internal/models"
)

var ErrVenueNotFound = errors.New("venue not found")

// CatalogService serves the read-only venue and testimonial catalog.
type CatalogService struct {
	venues       []models.Venue
	testimonials []models.Testimonial
}

// NewCatalogService builds the catalog from the built-in seed data.
func NewCatalogService() *CatalogService {
	venues := []models.Venue{
		{Name: "Arena Spor Tesisleri", Location: "Kadıköy, İstanbul", Amenities: []string{"Parking", "Shower", "Cafe"}, Available: 8},
		{Name: "Şampiyon Halı Saha", Location: "Beşiktaş, İstanbul", Amenities: []string{"Parking", "WiFi"}, Available: 5},
		{Name: "Yıldız Sports Complex", Location: "Çankaya, Ankara", Amenities: []string{"Shower", "Cafe", "WiFi"}, Available: 12},
		{Name: "Futbol Park", Location: "Karşıyaka, İzmir", Amenities: []string{"Parking", "Shower"}, Available: 6},
		{Name: "Stadium Halı Saha", Location: "Çankaya, Ankara", Amenities: []string{"Parking", "Cafe", "WiFi"}, Available: 10},
		{Name: "Pro Football Center", Location: "Bornova, İzmir", Amenities: []string{"Shower", "WiFi", "Cafe"}, Available: 7},
	}
	for i := range venues {
		venues[i].ID = uuid.New().String()
		venues[i].ImageURL = fmt.Sprintf("/assets/generated_images/venue_card_thumbnail_%d.png", i+1)
	}

	testimonials := []models.Testimonial{
		{
			Name:       "Mehmet Yılmaz",
			Quote:      "Harika bir uygulama! Artık her hafta düzenli olarak maça katılıyorum. Yeni arkadaşlar edinmek için mükemmel bir platform.",
			MatchCount: 156,
			AvatarURL:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Mehmet",
		},
		{
			Name:       "Ayşe Demir",
			Quote:      "Saha bulmak hiç bu kadar kolay olmamıştı. Arayüz çok kullanışlı ve sahalar gerçekten kaliteli.",
			MatchCount: 89,
			AvatarURL:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Ayse",
		},
		{
			Name:       "Burak Özkan",
			Quote:      "İş çıkışı maç bulmak için ideal. Lokasyon filtreleme özelliği sayesinde yakınımdaki maçları kolayca buluyorum.",
			MatchCount: 203,
			AvatarURL:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Burak",
		},
		{
			Name:       "Zeynep Kara",
			Quote:      "Hem eğlenceli hem de sağlıklı vakit geçirmek için harika bir fırsat. Topluluk çok arkadaş canlısı!",
			MatchCount: 127,
			AvatarURL:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Zeynep",
		},
	}
	for i := range testimonials {
		testimonials[i].ID = uuid.New().String()
	}

	return &CatalogService{venues: venues, testimonials: testimonials}
}

// Venues returns every venue.
func (s *CatalogService) Venues() []models.Venue {
	return s.venues
}

// Venue returns one venue by ID.
func (s *CatalogService) Venue(id string) (*models.Venue, error) {
	for i := range s.venues {
		if s.venues[i].ID == id {
			return &s.venues[i], nil
		}
	}
	return nil, ErrVenueNotFound
}

// Testimonials returns every testimonial.
func (s *CatalogService) Testimonials() []models.Testimonial {
	return s.testimonials
}
