// Package greenhouse fetches open roles from the Harvest API.
package greenhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rolesync/internal/domain"
	"rolesync/internal/studio"
)

type Config struct {
	BaseURL string // https://harvest.greenhouse.io/v1
	APIKey  string
	PerPage int
}

type Client struct {
	cfg Config
	hc  *http.Client
}

func New(cfg Config, hc *http.Client) *Client {
	if cfg.PerPage <= 0 {
		cfg.PerPage = 100
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{cfg: cfg, hc: hc}
}

type teamMember struct {
	FirstName string `json:"first_name"`
}

type job struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	OpenedAt string `json:"opened_at"`
	Offices  []struct {
		Name string `json:"name"`
	} `json:"offices"`
	Departments []struct {
		Name string `json:"name"`
	} `json:"departments"`
	HiringTeam struct {
		Recruiters   []teamMember `json:"recruiters"`
		Coordinators []teamMember `json:"coordinators"`
	} `json:"hiring_team"`
}

// OpenRoles walks the paginated open-jobs collection until a page comes back
// empty. A page-level failure stops pagination; whatever was collected so far
// is returned (partial results beat none — transient 5xx already retried at
// the HTTP layer).
func (c *Client) OpenRoles(ctx context.Context) []domain.Role {
	var out []domain.Role
	for page := 1; ; page++ {
		jobs, err := c.fetchPage(ctx, page)
		if err != nil {
			log.Printf("[greenhouse] page %d: %v", page, err)
			return out
		}
		if len(jobs) == 0 {
			return out
		}
		now := time.Now()
		for _, j := range jobs {
			if j.ID == 0 {
				// record without an id is unusable; skip it
				continue
			}
			out = append(out, toRole(j, now))
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]job, error) {
	q := url.Values{}
	q.Set("status", "open")
	q.Set("per_page", strconv.Itoa(c.cfg.PerPage))
	q.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/jobs?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	// Harvest wants the key as the user of a basic-auth pair with empty password.
	req.SetBasicAuth(c.cfg.APIKey, "")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("greenhouse get jobs: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("greenhouse jobs status %d", res.StatusCode)
	}

	var jobs []job
	if err := json.NewDecoder(res.Body).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("greenhouse decode jobs: %w", err)
	}
	return jobs, nil
}

func toRole(j job, now time.Time) domain.Role {
	var office, dept string
	if len(j.Offices) > 0 {
		office = j.Offices[0].Name
	}
	if len(j.Departments) > 0 {
		dept = j.Departments[0].Name
	}

	title := domain.FillTitle(j.Name)

	return domain.Role{
		JobID:        j.ID,
		Title:        title,
		Department:   domain.FillDepartment(dept),
		Location:     domain.FillLocation(office),
		Studio:       studio.Resolve(title, office),
		OpenedAt:     j.OpenedAt,
		DaysOpen:     domain.DaysOpen(j.OpenedAt, now),
		Recruiters:   joinFirstNames(j.HiringTeam.Recruiters),
		Coordinators: joinFirstNames(j.HiringTeam.Coordinators),
	}
}

func joinFirstNames(members []teamMember) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.FirstName)
	}
	return strings.Join(names, ", ")
}
