package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Gowtham121104/eventura-backend/internal/apperrors"
	"github.com/Gowtham121104/eventura-backend/internal/models"
	"github.com/Gowtham121104/eventura-backend/internal/repository"
	"github.com/Gowtham121104/eventura-backend/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	minimumScore       = 40.0
	maxRecommendations = 3
	defaultRating      = 4.0
)

// eventTypeSynonyms maps common caller phrasings to the catalog's canonical
// event type labels. Unrecognized input passes through unchanged.
var eventTypeSynonyms = map[string]string{
	"birthday":        "Birthday Party",
	"birthday party":  "Birthday Party",
	"wedding":         "Wedding",
	"corporate":       "Corporate Event",
	"corporate event": "Corporate Event",
	"party":           "Party",
	"other":           "Other",
}

// serviceKeywords expands a requested service label into the related terms
// looked up in package name + description text.
var serviceKeywords = map[string][]string{
	"photography":   {"photo", "photograph", "camera", "pictures"},
	"catering":      {"catering", "food", "dining", "buffet", "meal", "cuisine", "gourmet"},
	"decoration":    {"decoration", "decor", "design", "setup", "theme"},
	"venue":         {"venue", "hall", "space", "location", "resort", "hotel"},
	"entertainment": {"entertainment", "band", "orchestra", "performance", "show"},
	"dj":            {"dj", "music", "sound", "audio"},
	"videography":   {"video", "videograph", "film", "coverage"},
}

// Requirements is one client's stated needs for a single scoring call.
type Requirements struct {
	EventType  string
	Budget     float64
	GuestCount int
	Services   []string
	Date       string
}

// PackageDetails is the catalog snapshot echoed back with each match.
type PackageDetails struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	EventType   string   `json:"eventType"`
}

// ScoredRecommendation is one ranked match with its justification. It is
// never persisted.
type ScoredRecommendation struct {
	PackageDetails PackageDetails `json:"packageDetails"`
	Score          float64        `json:"score"`
	MatchReasons   []string       `json:"matchReasons"`
	Explanation    string         `json:"explanation"`
}

// RecommendationService ranks active catalog packages against a client's
// requirements with a deterministic weighted heuristic.
type RecommendationService struct {
	packages repository.PackageRepository
	log      *logrus.Logger
}

func NewRecommendationService(packages repository.PackageRepository, log *logrus.Logger) *RecommendationService {
	if log == nil {
		log = logrus.New()
	}
	return &RecommendationService{packages: packages, log: log}
}

// NormalizeEventType trims the label and resolves known synonyms to the
// canonical catalog value used by the exact-match filter.
func NormalizeEventType(eventType string) string {
	trimmed := strings.TrimSpace(eventType)
	if canonical, ok := eventTypeSynonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Recommend returns the top matches for the given requirements, ranked by
// score. A catalog read failure degrades to an empty result on purpose: a
// transient read problem should not fail the whole recommendation request.
func (s *RecommendationService) Recommend(ctx context.Context, req Requirements) ([]ScoredRecommendation, error) {
	if strings.TrimSpace(req.EventType) == "" {
		return nil, apperrors.BadRequest("Missing required fields")
	}
	if req.Budget <= 0 {
		return nil, apperrors.BadRequest("Budget must be greater than zero")
	}
	if req.GuestCount < 0 {
		return nil, apperrors.BadRequest("Guest count cannot be negative")
	}

	req.EventType = NormalizeEventType(req.EventType)

	packages, err := s.packages.FindActiveByEventType(ctx, req.EventType)
	if err != nil {
		s.log.WithError(err).WithField("eventType", req.EventType).Warn("catalog read failed, returning no recommendations")
		return []ScoredRecommendation{}, nil
	}

	scored := make([]ScoredRecommendation, 0, len(packages))
	for _, pkg := range packages {
		score := scorePackage(&pkg, req)
		if score < minimumScore {
			continue
		}

		displayRating := 4.5
		if pkg.Rating != nil {
			displayRating = *pkg.Rating
		}

		scored = append(scored, ScoredRecommendation{
			PackageDetails: PackageDetails{
				ID:          pkg.ID,
				Name:        pkg.Name,
				Description: pkg.Description,
				Price:       pkg.Price,
				Rating:      displayRating,
				ImageURL:    pkg.ImageURL,
				EventType:   pkg.EventType,
			},
			Score:        score,
			MatchReasons: matchReasons(&pkg, req),
			Explanation:  explanation(&pkg, req, score),
		})
	}

	// Stable sort keeps the catalog ordering (rating DESC, price ASC) as
	// the tie-break.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored, nil
}

// scorePackage computes the weighted fitness score. Components can sum past
// 100 in edge cases (high rating, under-budget bonus, full service match);
// the total is intentionally not clamped.
func scorePackage(pkg *models.Package, req Requirements) float64 {
	score := 0.0

	// Event type match (15). Always true post-filter, but computed
	// independently so the function stands on its own.
	if strings.EqualFold(pkg.EventType, req.EventType) {
		score += 15
	}

	// Budget fit (40) by relative deviation.
	deviation := (pkg.Price - req.Budget) / req.Budget
	if deviation < 0 {
		deviation = -deviation
	}
	switch {
	case deviation <= 0.05:
		score += 40
	case deviation <= 0.15:
		score += 35
	case deviation <= 0.25:
		score += 28
	case deviation <= 0.40:
		score += 20
	default:
		score += 5
	}

	// Comfortably but not excessively under budget.
	if pkg.Price < req.Budget && pkg.Price >= req.Budget*0.7 {
		score += 5
	}

	score += serviceCoverageScore(pkg, req.Services)
	score += guestCountScore(pkg.Price, req.GuestCount)

	rating := defaultRating
	if pkg.Rating != nil {
		rating = *pkg.Rating
	}
	score += (rating / 5) * 5

	return roundScore(score)
}

// serviceCoverageScore awards up to 30 points for the share of requested
// services found in the package text.
func serviceCoverageScore(pkg *models.Package, services []string) float64 {
	if len(services) == 0 {
		return 0
	}

	text := packageText(pkg)
	matched := 0
	for _, service := range services {
		if serviceMatches(text, service) {
			matched++
		}
	}
	return float64(matched) / float64(len(services)) * 30
}

// serviceMatches checks the service label, or any related keyword from its
// category, against the lowercased package name + description.
func serviceMatches(packageText, service string) bool {
	service = strings.ToLower(strings.TrimSpace(service))
	if service == "" {
		return false
	}

	if strings.Contains(packageText, service) {
		return true
	}

	for category, keywords := range serviceKeywords {
		related := strings.Contains(service, category)
		if !related {
			for _, keyword := range keywords {
				if service == keyword {
					related = true
					break
				}
			}
		}
		if !related {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(packageText, keyword) {
				return true
			}
		}
	}
	return false
}

// guestCountScore awards up to 10 points for how well the guest count sits
// in the ideal band implied by the package's price tier.
func guestCountScore(price float64, guestCount int) float64 {
	var idealMin, idealMax float64
	switch {
	case price < 50000:
		idealMin, idealMax = 10, 100
	case price < 150000:
		idealMin, idealMax = 50, 300
	case price < 350000:
		idealMin, idealMax = 100, 500
	default:
		idealMin, idealMax = 200, 2000
	}

	guests := float64(guestCount)
	switch {
	case guests >= idealMin && guests <= idealMax:
		return 10
	case guests < idealMin && guests >= idealMin*0.7:
		return 7
	case guests > idealMax && guests <= idealMax*1.3:
		return 7
	default:
		return 3
	}
}

// matchReasons builds the human-readable justification list in fixed order:
// budget, services, guest count, rating.
func matchReasons(pkg *models.Package, req Requirements) []string {
	var reasons []string

	if pkg.Price <= req.Budget {
		saved := req.Budget - pkg.Price
		if saved > 0 {
			reasons = append(reasons, fmt.Sprintf("Saves you ₹%s from your budget", utils.FormatAmount(saved)))
		} else {
			reasons = append(reasons, fmt.Sprintf("Perfect match for your ₹%s budget", utils.FormatAmount(req.Budget)))
		}
	} else {
		extra := pkg.Price - req.Budget
		reasons = append(reasons, fmt.Sprintf("Just ₹%s above budget - Great value", utils.FormatAmount(extra)))
	}

	text := packageText(pkg)
	var matchedServices []string
	for _, service := range req.Services {
		if serviceMatches(text, service) {
			matchedServices = append(matchedServices, titleCase(service))
		}
	}
	if len(req.Services) > 0 && len(matchedServices) == len(req.Services) {
		reasons = append(reasons, "Includes all your preferred services")
	} else if len(matchedServices) > 0 {
		if len(matchedServices) > 3 {
			matchedServices = matchedServices[:3]
		}
		reasons = append(reasons, "Includes "+strings.Join(matchedServices, ", "))
	}

	reasons = append(reasons, fmt.Sprintf("Suitable for %d guests", req.GuestCount))

	rating := defaultRating
	if pkg.Rating != nil {
		rating = *pkg.Rating
	}
	if rating >= 4.7 {
		reasons = append(reasons, fmt.Sprintf("Excellent %.1f⭐ rating", rating))
	} else if rating >= 4.3 {
		reasons = append(reasons, fmt.Sprintf("Highly rated %.1f⭐", rating))
	}

	return reasons
}

// explanation builds the one-paragraph summary keyed by score tier.
func explanation(pkg *models.Package, req Requirements, score float64) string {
	rating := defaultRating
	if pkg.Rating != nil {
		rating = *pkg.Rating
	}

	var b strings.Builder
	switch {
	case score >= 85:
		fmt.Fprintf(&b, "This package is a perfect match for your %s! ", req.EventType)
	case score >= 70:
		fmt.Fprintf(&b, "This is an excellent choice for your %s. ", req.EventType)
	default:
		fmt.Fprintf(&b, "This is a good option for your %s. ", req.EventType)
	}

	if pkg.Price <= req.Budget {
		b.WriteString("It fits perfectly within your budget")
	} else {
		b.WriteString("It offers premium features")
	}

	if rating >= 4.5 {
		b.WriteString(" and has excellent reviews from our clients!")
	} else {
		b.WriteString(" and offers quality service for your event.")
	}

	return b.String()
}

func packageText(pkg *models.Package) string {
	return strings.ToLower(pkg.Name + " " + pkg.Description)
}

func titleCase(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
