package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alimikegami/point-of-sales/storefront-service/config"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/countdown"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type IntegrationTestSuite struct {
	suite.Suite

	mu       sync.Mutex
	routes   map[string]string
	statuses map[string]int
	guarded  map[string]string
	hits     []string

	upstream *httptest.Server
	server   *httptest.Server
	app      *App
	registry *prometheus.Registry
}

func TestIntegration(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupTest() {
	s.routes = map[string]string{}
	s.statuses = map[string]int{}
	s.guarded = map[string]string{}
	s.hits = nil

	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits = append(s.hits, r.URL.Path)
		body, ok := s.routes[r.URL.Path]
		status, hasStatus := s.statuses[r.URL.Path]
		credential, isGuarded := s.guarded[r.URL.Path]
		s.mu.Unlock()

		switch {
		case isGuarded && r.Header.Get("Authorization") != credential:
			w.WriteHeader(http.StatusUnauthorized)
		case hasStatus:
			w.WriteHeader(status)
		case ok:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		default:
			http.NotFound(w, r)
		}
	}))

	s.registry = prometheus.NewRegistry()
	s.app = &App{
		Config: &config.Config{
			Environment: "test",
			BackendConfig: config.BackendConfig{
				BaseURL: s.upstream.URL,
				Timeout: 2 * time.Second,
			},
			ListingConfig: config.ListingConfig{ItemsPerPage: 10},
			ViewConfig:    config.ViewConfig{MaxViews: 16, TTL: time.Minute},
			PromoConfig:   config.PromoConfig{Countdown: time.Hour, TickInterval: time.Hour},
		},
		Registry: s.registry,
		Clock:    countdown.NewClock(countdown.TimeRemaining{Days: 2, Hours: 14, Minutes: 30, Seconds: 45}),
	}
	s.Require().NoError(s.app.Build())
	s.server = httptest.NewServer(s.app.Server)
}

func (s *IntegrationTestSuite) TearDownTest() {
	s.server.Close()
	s.upstream.Close()
	s.Require().NoError(s.app.StopServer())
}

func (s *IntegrationTestSuite) serve(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = body
}

func (s *IntegrationTestSuite) fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[path] = status
}

func (s *IntegrationTestSuite) guard(path, credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guarded[path] = credential
}

func (s *IntegrationTestSuite) get(path string) (int, envelope) {
	return s.getAs(path, "")
}

func (s *IntegrationTestSuite) getAs(path, authorization string) (int, envelope) {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+path, nil)
	s.Require().NoError(err)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var env envelope
	s.Require().NoError(json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func (s *IntegrationTestSuite) TestPing() {
	status, env := s.get("/api/v1/ping")
	s.Equal(http.StatusOK, status)
	s.Equal("success", env.Status)
	s.Equal("pong", env.Message)
}

func (s *IntegrationTestSuite) TestDashboardFallsBackToNextCandidate() {
	s.fail("/clients", http.StatusInternalServerError)
	s.serve("/users", `{"data":[{"id":"1","name":"Ada","email":"ada@example.com"},{"id":"2","status":"suspended"}]}`)

	status, env := s.get("/api/v1/dashboard")
	s.Equal(http.StatusOK, status)

	var data struct {
		Stats struct {
			TotalUsers     int `json:"total_users"`
			ActiveUsers    int `json:"active_users"`
			UsersWithEmail int `json:"users_with_email"`
		} `json:"stats"`
		Users struct {
			Records []map[string]interface{} `json:"records"`
		} `json:"users"`
		Notice string `json:"notice"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(2, data.Stats.TotalUsers)
	s.Equal(1, data.Stats.ActiveUsers)
	s.Equal(1, data.Stats.UsersWithEmail)
	s.Len(data.Users.Records, 2)
	s.Empty(data.Notice)
	s.Equal([]string{"/clients", "/users"}, s.hits)
}

func (s *IntegrationTestSuite) TestDashboardExhaustedShowsNotice() {
	status, env := s.get("/api/v1/dashboard?q=ada&page=2")
	s.Equal(http.StatusOK, status)
	s.Equal("users: No data available", env.Message)

	var data struct {
		Users struct {
			Records []interface{} `json:"records"`
		} `json:"users"`
		Notice string `json:"notice"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.NotNil(data.Users.Records)
	s.Empty(data.Users.Records)
	s.Equal("users: No data available", data.Notice)
	s.Equal([]string{"/clients", "/users", "/admin/users"}, s.hits)
}

func (s *IntegrationTestSuite) TestDashboardUsersReusesSnapshot() {
	s.serve("/clients", `[{"id":1,"name":"Ada"},{"id":2,"name":"Grace"}]`)

	status, _ := s.get("/api/v1/dashboard")
	s.Equal(http.StatusOK, status)

	status, env := s.get("/api/v1/dashboard/users?q=grace")
	s.Equal(http.StatusOK, status)

	var data struct {
		Users struct {
			Metadata struct {
				TotalCount int `json:"total_count"`
			} `json:"_metadata"`
		} `json:"users"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(1, data.Users.Metadata.TotalCount)
	s.Equal([]string{"/clients"}, s.hits)
}

func (s *IntegrationTestSuite) TestDashboardSnapshotsDoNotLeakAcrossCallers() {
	s.guard("/clients", "Bearer admin")
	s.serve("/clients", `[{"id":"1","name":"Secret Admin","email":"boss@example.com"}]`)

	status, _ := s.getAs("/api/v1/dashboard", "Bearer admin")
	s.Equal(http.StatusOK, status)

	type usersPage struct {
		Users struct {
			Records []struct {
				ID string `json:"id"`
			} `json:"records"`
		} `json:"users"`
	}

	status, env := s.get("/api/v1/dashboard/users")
	s.Equal(http.StatusOK, status)
	var anonymous usersPage
	s.Require().NoError(json.Unmarshal(env.Data, &anonymous))
	s.Empty(anonymous.Users.Records)

	status, env = s.getAs("/api/v1/dashboard/users", "Bearer admin")
	s.Equal(http.StatusOK, status)
	var admin usersPage
	s.Require().NoError(json.Unmarshal(env.Data, &admin))
	s.Require().Len(admin.Users.Records, 1)
	s.Equal("1", admin.Users.Records[0].ID)
}

func (s *IntegrationTestSuite) TestProductDetailNotFoundIsRetryable() {
	status, env := s.get("/api/v1/products/42?ref=home")
	s.Equal(http.StatusNotFound, status)
	s.Equal("error", env.Status)

	var details struct {
		RetryURL string `json:"retry_url"`
	}
	s.Require().NoError(json.Unmarshal(env.Errors, &details))
	s.Equal("/api/v1/products/42?ref=home", details.RetryURL)
}

func (s *IntegrationTestSuite) TestProductDetailUpstreamFailure() {
	s.fail("/client/v1/productDetails/42", http.StatusServiceUnavailable)

	status, env := s.get("/api/v1/products/42")
	s.Equal(http.StatusBadGateway, status)
	s.Contains(env.Message, "Upstream service unavailable")
}

func (s *IntegrationTestSuite) TestProductDetail() {
	s.serve("/client/v1/productDetails/42", `{"data":{"id":"42","name":"Linen Shirt","price":50,"description":"Breathable *linen*"}}`)

	status, env := s.get("/api/v1/products/42")
	s.Equal(http.StatusOK, status)

	var data struct {
		Name            string `json:"name"`
		Price           string `json:"price"`
		DescriptionHTML string `json:"description_html"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("Linen Shirt", data.Name)
	s.Equal("$50.00", data.Price)
	s.Equal("<p>Breathable <em>linen</em></p>", data.DescriptionHTML)
}

func (s *IntegrationTestSuite) TestHome() {
	s.serve("/client/v1/categories", `{"data":[{"categoryId":"c1","categoryName":"Shirts"}]}`)
	s.serve("/client/v1/featureProducts", `{"data":[
		{"productId":"p1","productName":"Cap","originalPrice":20,"finalPrice":15},
		{"productId":"p2","productName":"Tee","originalPrice":10,"rating":"4.6"}
	]}`)
	s.serve("/client/v1/products", `{"data":[{"id":"p3","name":"Hat","price":10,"rating":"5"}]}`)

	status, env := s.get("/api/v1/home")
	s.Equal(http.StatusOK, status)

	var data struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Featured []struct {
			DiscountBadge string `json:"discount_badge"`
		} `json:"featured"`
		BestSellers []struct {
			ID string `json:"id"`
		} `json:"best_sellers"`
		Countdown struct {
			Label string `json:"label"`
		} `json:"countdown"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Require().Len(data.Categories, 1)
	s.Equal("Shirts", data.Categories[0].Name)
	s.Require().Len(data.Featured, 2)
	s.Equal("-25%", data.Featured[0].DiscountBadge)
	s.Require().Len(data.BestSellers, 1)
	s.Equal("p2", data.BestSellers[0].ID)
	s.Equal("2d 14h 30m 45s", data.Countdown.Label)
	s.NotContains(s.hits, "/client/v1/products")
}

func (s *IntegrationTestSuite) TestCountdown() {
	s.app.Clock.Tick()

	status, env := s.get("/api/v1/promo/countdown")
	s.Equal(http.StatusOK, status)

	var data struct {
		Seconds int  `json:"seconds"`
		Ended   bool `json:"ended"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(44, data.Seconds)
	s.False(data.Ended)
}

func (s *IntegrationTestSuite) TestFetchAttemptsAreCounted() {
	s.fail("/clients", http.StatusBadGateway)
	s.serve("/users", `[]`)
	s.get("/api/v1/dashboard")

	families, err := s.registry.Gather()
	s.Require().NoError(err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "storefront_fetch_attempts_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			var candidate, outcome string
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "candidate":
					candidate = label.GetValue()
				case "outcome":
					outcome = label.GetValue()
				}
			}
			counts[candidate+" "+outcome] = metric.GetCounter().GetValue()
		}
	}
	s.Equal(map[string]float64{
		"GET /clients failure": 1,
		"GET /users success":   1,
	}, counts)
}
