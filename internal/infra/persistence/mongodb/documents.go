package mongodb

import (
	"time"

	"trailpack/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type destinationDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Country     string             `bson:"country"`
	Rating      float64            `bson:"rating"`
	Description string             `bson:"description,omitempty"`
	Images      []string           `bson:"images"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type foodSpotDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	Type          string             `bson:"type,omitempty"`
	Images        []string           `bson:"images"`
	Description   string             `bson:"description,omitempty"`
	Price         float64            `bson:"price"`
	DestinationID primitive.ObjectID `bson:"destinationId"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

type stayDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	Type          string             `bson:"type,omitempty"`
	Images        []string           `bson:"images"`
	Description   string             `bson:"description,omitempty"`
	Price         float64            `bson:"price"`
	Rating        float64            `bson:"rating"`
	DestinationID primitive.ObjectID `bson:"destinationId"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

type localGemDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	Images        []string           `bson:"images"`
	Description   string             `bson:"description,omitempty"`
	DestinationID primitive.ObjectID `bson:"destinationId"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

type activityDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	Type          string             `bson:"type,omitempty"`
	Images        []string           `bson:"images"`
	Description   string             `bson:"description,omitempty"`
	Price         float64            `bson:"price"`
	DurationHours float64            `bson:"durationHours,omitempty"`
	DestinationID primitive.ObjectID `bson:"destinationId"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

type packageDocument struct {
	ID                 primitive.ObjectID   `bson:"_id"`
	DestinationID      primitive.ObjectID   `bson:"destinationId"`
	Name               string               `bson:"name"`
	Description        string               `bson:"description,omitempty"`
	BudgetPerDay       float64              `bson:"budgetPerDay"`
	MinBudget          float64              `bson:"minBudget"`
	MaxBudget          float64              `bson:"maxBudget"`
	DefaultStayID      *primitive.ObjectID  `bson:"defaultStayId,omitempty"`
	DefaultFoodSpotIDs []primitive.ObjectID `bson:"defaultFoodSpotIds"`
	DefaultLocalGemIDs []primitive.ObjectID `bson:"defaultLocalGemIds"`
	DefaultActivityIDs []primitive.ObjectID `bson:"defaultActivityIds"`
	Popularity         float64              `bson:"popularity"`
	Rating             float64              `bson:"rating"`
	TotalBookings      int64                `bson:"totalBookings"`
	IsActive           bool                 `bson:"isActive"`
	CreatedAt          time.Time            `bson:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt"`
}

// --- Mapper Functions ---

// nonNil keeps empty lists as [] in both the store and the JSON output.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func toDestinationDomain(d *destinationDocument) *entity.Destination {
	return &entity.Destination{
		ID:          d.ID,
		Name:        d.Name,
		Category:    entity.Category(d.Category),
		Country:     d.Country,
		Rating:      d.Rating,
		Description: d.Description,
		Images:      nonNil(d.Images),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromDestinationDomain(d *entity.Destination) *destinationDocument {
	return &destinationDocument{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category.String(),
		Country:     d.Country,
		Rating:      d.Rating,
		Description: d.Description,
		Images:      nonNil(d.Images),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toFoodSpotDomain(d *foodSpotDocument) *entity.FoodSpot {
	return &entity.FoodSpot{
		ID:            d.ID,
		Name:          d.Name,
		Type:          d.Type,
		Images:        nonNil(d.Images),
		Description:   d.Description,
		Price:         d.Price,
		DestinationID: d.DestinationID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func fromFoodSpotDomain(f *entity.FoodSpot) *foodSpotDocument {
	return &foodSpotDocument{
		ID:            f.ID,
		Name:          f.Name,
		Type:          f.Type,
		Images:        nonNil(f.Images),
		Description:   f.Description,
		Price:         f.Price,
		DestinationID: f.DestinationID,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func toStayDomain(d *stayDocument) *entity.Stay {
	return &entity.Stay{
		ID:            d.ID,
		Name:          d.Name,
		Type:          d.Type,
		Images:        nonNil(d.Images),
		Description:   d.Description,
		Price:         d.Price,
		Rating:        d.Rating,
		DestinationID: d.DestinationID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func fromStayDomain(s *entity.Stay) *stayDocument {
	return &stayDocument{
		ID:            s.ID,
		Name:          s.Name,
		Type:          s.Type,
		Images:        nonNil(s.Images),
		Description:   s.Description,
		Price:         s.Price,
		Rating:        s.Rating,
		DestinationID: s.DestinationID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toLocalGemDomain(d *localGemDocument) *entity.LocalGem {
	return &entity.LocalGem{
		ID:            d.ID,
		Name:          d.Name,
		Images:        nonNil(d.Images),
		Description:   d.Description,
		DestinationID: d.DestinationID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func fromLocalGemDomain(g *entity.LocalGem) *localGemDocument {
	return &localGemDocument{
		ID:            g.ID,
		Name:          g.Name,
		Images:        nonNil(g.Images),
		Description:   g.Description,
		DestinationID: g.DestinationID,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func toActivityDomain(d *activityDocument) *entity.Activity {
	return &entity.Activity{
		ID:            d.ID,
		Name:          d.Name,
		Type:          d.Type,
		Images:        nonNil(d.Images),
		Description:   d.Description,
		Price:         d.Price,
		DurationHours: d.DurationHours,
		DestinationID: d.DestinationID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func fromActivityDomain(a *entity.Activity) *activityDocument {
	return &activityDocument{
		ID:            a.ID,
		Name:          a.Name,
		Type:          a.Type,
		Images:        nonNil(a.Images),
		Description:   a.Description,
		Price:         a.Price,
		DurationHours: a.DurationHours,
		DestinationID: a.DestinationID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toPackageDomain(d *packageDocument) *entity.Package {
	return &entity.Package{
		ID:                 d.ID,
		DestinationID:      d.DestinationID,
		Name:               d.Name,
		Description:        d.Description,
		BudgetPerDay:       d.BudgetPerDay,
		MinBudget:          d.MinBudget,
		MaxBudget:          d.MaxBudget,
		DefaultStayID:      d.DefaultStayID,
		DefaultFoodSpotIDs: nonNil(d.DefaultFoodSpotIDs),
		DefaultLocalGemIDs: nonNil(d.DefaultLocalGemIDs),
		DefaultActivityIDs: nonNil(d.DefaultActivityIDs),
		Popularity:         d.Popularity,
		Rating:             d.Rating,
		TotalBookings:      d.TotalBookings,
		IsActive:           d.IsActive,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func fromPackageDomain(p *entity.Package) *packageDocument {
	return &packageDocument{
		ID:                 p.ID,
		DestinationID:      p.DestinationID,
		Name:               p.Name,
		Description:        p.Description,
		BudgetPerDay:       p.BudgetPerDay,
		MinBudget:          p.MinBudget,
		MaxBudget:          p.MaxBudget,
		DefaultStayID:      p.DefaultStayID,
		DefaultFoodSpotIDs: nonNil(p.DefaultFoodSpotIDs),
		DefaultLocalGemIDs: nonNil(p.DefaultLocalGemIDs),
		DefaultActivityIDs: nonNil(p.DefaultActivityIDs),
		Popularity:         p.Popularity,
		Rating:             p.Rating,
		TotalBookings:      p.TotalBookings,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
