package services

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/dimitrije/ticketdesk-api/internal/models"
	"github.com/dimitrije/ticketdesk-api/internal/store"
)

type TeamService struct {
	store store.Store
}

func NewTeamService(s store.Store) *TeamService {
	return &TeamService{store: s}
}

func (s *TeamService) List(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := s.store.View(ctx, func(doc *models.Document) error {
		teams = make([]models.Team, len(doc.Teams))
		copy(teams, doc.Teams)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *TeamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	var team models.Team
	err := s.store.View(ctx, func(doc *models.Document) error {
		i := findTeam(doc.Teams, id)
		if i < 0 {
			return teamNotFound(id)
		}
		team = doc.Teams[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Create validates and stores a new team. members is the raw JSON value
// of the request's members field so that non-array and non-string input
// can be reported precisely.
func (s *TeamService) Create(ctx context.Context, teamname *string, members json.RawMessage) (*models.Team, error) {
	name := strings.TrimSpace(deref(teamname))
	list, ok := decodeMembers(members)

	if name == "" || !ok {
		missing := map[string]string{}
		if name == "" {
			missing["teamname"] = "Team name is required"
		}
		if !ok {
			missing["members"] = "Members are required and must be a non-empty array"
		}
		return nil, &ValidationError{
			Message:       "All fields are required and members must be a non-empty array of strings",
			MissingFields: missing,
		}
	}

	if invalid := invalidMembers(list); len(invalid) > 0 {
		return nil, &ValidationError{
			Message:        "All members must be non-empty strings",
			InvalidMembers: invalid,
		}
	}

	var team models.Team
	err := s.store.Update(ctx, func(doc *models.Document) error {
		for _, t := range doc.Teams {
			if strings.EqualFold(t.Teamname, name) {
				return &ConflictError{
					Message: "A team with this title already exists",
					Value:   name,
				}
			}
		}

		team = models.Team{
			ID:       doc.NextTeamID(),
			Teamname: name,
			Members:  trimMembers(list),
		}
		doc.Teams = append(doc.Teams, team)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update changes the supplied fields of a team. A field is supplied when it
// is present and not an empty string; anything else keeps its old value.
func (s *TeamService) Update(ctx context.Context, id int, teamname *string, members json.RawMessage) (*models.Team, error) {
	var team models.Team
	err := s.store.Update(ctx, func(doc *models.Document) error {
		i := findTeam(doc.Teams, id)
		if i < 0 {
			return teamNotFound(id)
		}
		team = doc.Teams[i]

		name := strings.TrimSpace(deref(teamname))
		if deref(teamname) != "" && name == "" {
			return &ValidationError{Message: "Team name cannot be empty"}
		}

		var list []any
		if present(members) {
			var ok bool
			if list, ok = decodeMembers(members); !ok {
				return &ValidationError{Message: "Members must be a non-empty array of strings"}
			}
			if invalid := invalidMembers(list); len(invalid) > 0 {
				return &ValidationError{
					Message:        "All members must be non-empty strings",
					InvalidMembers: invalid,
				}
			}
		}

		if name != "" {
			team.Teamname = name
		}
		if list != nil {
			team.Members = trimMembers(list)
		}

		teams := slices.DeleteFunc(doc.Teams, func(t models.Team) bool { return t.ID == id })
		teams = append(teams, team)
		slices.SortStableFunc(teams, func(a, b models.Team) int { return cmp.Compare(a.ID, b.ID) })
		doc.Teams = teams
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) Delete(ctx context.Context, id int) error {
	return s.store.Update(ctx, func(doc *models.Document) error {
		i := findTeam(doc.Teams, id)
		if i < 0 {
			return teamNotFound(id)
		}
		doc.Teams = slices.Delete(doc.Teams, i, i+1)
		return nil
	})
}

func findTeam(teams []models.Team, id int) int {
	return slices.IndexFunc(teams, func(t models.Team) bool { return t.ID == id })
}

func teamNotFound(id int) error {
	return &NotFoundError{Resource: "Team", ID: strconv.Itoa(id)}
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// decodeMembers returns the members array, or false when raw is absent,
// not an array, or empty.
func decodeMembers(raw json.RawMessage) ([]any, bool) {
	if !present(raw) {
		return nil, false
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
		return nil, false
	}
	return list, true
}

// invalidMembers collects every element that is not a string or is blank.
func invalidMembers(list []any) []any {
	var invalid []any
	for _, m := range list {
		s, ok := m.(string)
		if !ok || strings.TrimSpace(s) == "" {
			invalid = append(invalid, m)
		}
	}
	return invalid
}

func trimMembers(list []any) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = strings.TrimSpace(m.(string))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
