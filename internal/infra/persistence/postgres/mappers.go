package postgres

import (
	"trailpack/internal/domain/entity"
	"trailpack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/datatypes"
)

// objectID parses a stored hex id. Rows are only ever written from valid
// ObjectIDs, so a parse failure yields the zero id.
func objectID(hex string) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(hex)

	return id
}

func objectIDs(hexes []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		ids = append(ids, objectID(h))
	}

	return ids
}

func hexes(ids []primitive.ObjectID) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}

	return out
}

func stringSlice(s []string) datatypes.JSONSlice[string] {
	if s == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](s)
}

func images(s datatypes.JSONSlice[string]) []string {
	if s == nil {
		return []string{}
	}

	return []string(s)
}

func toDestinationDomain(m *model.DestinationModel) *entity.Destination {
	return &entity.Destination{
		ID:          objectID(m.ID),
		Name:        m.Name,
		Category:    entity.Category(m.Category),
		Country:     m.Country,
		Rating:      m.Rating,
		Description: m.Description,
		Images:      images(m.Images),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDestinationDomain(d *entity.Destination) *model.DestinationModel {
	return &model.DestinationModel{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Category:    d.Category.String(),
		Country:     d.Country,
		Rating:      d.Rating,
		Description: d.Description,
		Images:      stringSlice(d.Images),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toFoodSpotDomain(m *model.FoodSpotModel) *entity.FoodSpot {
	return &entity.FoodSpot{
		ID:            objectID(m.ID),
		Name:          m.Name,
		Type:          m.Type,
		Images:        images(m.Images),
		Description:   m.Description,
		Price:         m.Price,
		DestinationID: objectID(m.DestinationID),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromFoodSpotDomain(f *entity.FoodSpot) *model.FoodSpotModel {
	return &model.FoodSpotModel{
		ID:            f.ID.Hex(),
		Name:          f.Name,
		Type:          f.Type,
		Images:        stringSlice(f.Images),
		Description:   f.Description,
		Price:         f.Price,
		DestinationID: f.DestinationID.Hex(),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func toStayDomain(m *model.StayModel) *entity.Stay {
	return &entity.Stay{
		ID:            objectID(m.ID),
		Name:          m.Name,
		Type:          m.Type,
		Images:        images(m.Images),
		Description:   m.Description,
		Price:         m.Price,
		Rating:        m.Rating,
		DestinationID: objectID(m.DestinationID),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromStayDomain(s *entity.Stay) *model.StayModel {
	return &model.StayModel{
		ID:            s.ID.Hex(),
		Name:          s.Name,
		Type:          s.Type,
		Images:        stringSlice(s.Images),
		Description:   s.Description,
		Price:         s.Price,
		Rating:        s.Rating,
		DestinationID: s.DestinationID.Hex(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toLocalGemDomain(m *model.LocalGemModel) *entity.LocalGem {
	return &entity.LocalGem{
		ID:            objectID(m.ID),
		Name:          m.Name,
		Images:        images(m.Images),
		Description:   m.Description,
		DestinationID: objectID(m.DestinationID),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromLocalGemDomain(g *entity.LocalGem) *model.LocalGemModel {
	return &model.LocalGemModel{
		ID:            g.ID.Hex(),
		Name:          g.Name,
		Images:        stringSlice(g.Images),
		Description:   g.Description,
		DestinationID: g.DestinationID.Hex(),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func toActivityDomain(m *model.ActivityModel) *entity.Activity {
	return &entity.Activity{
		ID:            objectID(m.ID),
		Name:          m.Name,
		Type:          m.Type,
		Images:        images(m.Images),
		Description:   m.Description,
		Price:         m.Price,
		DurationHours: m.DurationHours,
		DestinationID: objectID(m.DestinationID),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromActivityDomain(a *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		ID:            a.ID.Hex(),
		Name:          a.Name,
		Type:          a.Type,
		Images:        stringSlice(a.Images),
		Description:   a.Description,
		Price:         a.Price,
		DurationHours: a.DurationHours,
		DestinationID: a.DestinationID.Hex(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toPackageDomain(m *model.PackageModel) *entity.Package {
	p := &entity.Package{
		ID:                 objectID(m.ID),
		DestinationID:      objectID(m.DestinationID),
		Name:               m.Name,
		Description:        m.Description,
		BudgetPerDay:       m.BudgetPerDay,
		MinBudget:          m.MinBudget,
		MaxBudget:          m.MaxBudget,
		DefaultFoodSpotIDs: objectIDs(m.DefaultFoodSpotIDs),
		DefaultLocalGemIDs: objectIDs(m.DefaultLocalGemIDs),
		DefaultActivityIDs: objectIDs(m.DefaultActivityIDs),
		Popularity:         m.Popularity,
		Rating:             m.Rating,
		TotalBookings:      m.TotalBookings,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.DefaultStayID != nil {
		stayID := objectID(*m.DefaultStayID)
		p.DefaultStayID = &stayID
	}

	return p
}

func fromPackageDomain(p *entity.Package) *model.PackageModel {
	m := &model.PackageModel{
		ID:                 p.ID.Hex(),
		DestinationID:      p.DestinationID.Hex(),
		Name:               p.Name,
		Description:        p.Description,
		BudgetPerDay:       p.BudgetPerDay,
		MinBudget:          p.MinBudget,
		MaxBudget:          p.MaxBudget,
		DefaultFoodSpotIDs: hexes(p.DefaultFoodSpotIDs),
		DefaultLocalGemIDs: hexes(p.DefaultLocalGemIDs),
		DefaultActivityIDs: hexes(p.DefaultActivityIDs),
		Popularity:         p.Popularity,
		Rating:             p.Rating,
		TotalBookings:      p.TotalBookings,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.DefaultStayID != nil {
		stayID := p.DefaultStayID.Hex()
		m.DefaultStayID = &stayID
	}

	return m
}
