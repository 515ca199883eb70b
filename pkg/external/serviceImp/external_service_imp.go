package serviceImp

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"mantrix/entities"
	"mantrix/pkg/external/service"
	roadmaprepo "mantrix/pkg/roadmap/repository"
)

const (
	maxPageBytes = 1500000
	// Imported pages carry no timing data; every module gets a flat
	// 15-minute estimate.
	importedDuration = 900
	maxBranches      = 8
	maxModules       = 12
)

var catalog = []service.Source{
	{ID: "roadmap_sh", Name: "roadmap.sh", URL: "https://roadmap.sh", Description: "Community-driven developer roadmaps"},
	{ID: "github_awesome", Name: "Awesome Lists", URL: "https://github.com/sindresorhus/awesome", Description: "Curated awesome lists on GitHub"},
	{ID: "freecodecamp", Name: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn", Description: "Free interactive curriculum"},
}

type ExternalSvc struct {
	roadmaps roadmaprepo.RoadmapRepository
	client   *http.Client
}

func New(roadmaps roadmaprepo.RoadmapRepository) *ExternalSvc {
	return &ExternalSvc{
		roadmaps: roadmaps,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *ExternalSvc) Sources() []service.Source { return catalog }

// ImportFromURL fetches a curriculum page and converts its outline
// into a roadmap: h2 headings become branches, list items under each
// heading become modules.
func (s *ExternalSvc) ImportFromURL(uid, rawURL string) (*entities.Roadmap, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid url")
	}

	resp, err := s.client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch failed: status %d", resp.StatusCode)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}

	limited := io.LimitedReader{R: resp.Body, N: maxPageBytes}
	doc, err := goquery.NewDocumentFromReader(&limited)
	if err != nil {
		return nil, err
	}

	r := s.buildRoadmap(doc, uid, u.Host)
	if len(r.Branches) == 0 {
		return nil, fmt.Errorf("no curriculum outline found on page")
	}
	if err := s.roadmaps.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ExternalSvc) buildRoadmap(doc *goquery.Document, uid, host string) *entities.Roadmap {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = "Imported from " + host
	}

	branches := []entities.Branch{}
	doc.Find("h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		name := strings.TrimSpace(h.Text())
		if name == "" {
			return true
		}
		videos := []entities.VideoModule{}
		h.NextUntil("h2").Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
			text := strings.Join(strings.Fields(li.Text()), " ")
			if text == "" {
				return true
			}
			if len(text) > 120 {
				text = text[:120]
			}
			videos = append(videos, entities.VideoModule{
				ID:       uuid.NewString(),
				Title:    text,
				Duration: importedDuration,
				IsCore:   len(videos) == 0,
			})
			return len(videos) < maxModules
		})
		if len(videos) > 0 {
			branches = append(branches, entities.Branch{
				ID:     uuid.NewString(),
				Title:  name,
				Videos: videos,
			})
		}
		return len(branches) < maxBranches
	})

	r := &entities.Roadmap{
		ID:          uuid.NewString(),
		UserID:      uid,
		Title:       title,
		Description: "Imported from " + host,
		Branches:    branches,
	}
	r.RecomputeDurations()
	return r
}
