package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/jobmatch/internal/adapters/http/api"
	"github.com/okian/jobmatch/internal/adapters/repository"
	"github.com/okian/jobmatch/internal/domain/types"
	"github.com/okian/jobmatch/internal/index"
	. "github.com/smartystreets/goconvey/convey"
)

// stubDeps is a canned Dependencies implementation recording the last call.
type stubDeps struct {
	rec     types.Recommendation
	err     error
	rebuilt bool

	lastUserID string
	lastTitles []string
	lastTopK   int
	lastMin    *int
}

func (s *stubDeps) Recommend(ctx context.Context, userID string, topK int, minRelevance *int) (types.Recommendation, error) {
	s.lastUserID, s.lastTopK, s.lastMin = userID, topK, minRelevance
	return s.rec, s.err
}

func (s *stubDeps) SearchByTitles(ctx context.Context, userID string, titles []string, topK int, minRelevance *int) (types.Recommendation, error) {
	s.lastUserID, s.lastTitles, s.lastTopK, s.lastMin = userID, titles, topK, minRelevance
	return s.rec, s.err
}

func (s *stubDeps) Rebuild(ctx context.Context) error {
	s.rebuilt = true
	return s.err
}

func (s *stubDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"built": true}
}

func newTestServer(deps *stubDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, deps).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func decodeRecommendation(t *testing.T, resp *http.Response) types.Recommendation {
	t.Helper()
	var rec types.Recommendation
	So(json.NewDecoder(resp.Body).Decode(&rec), ShouldBeNil)
	return rec
}

func TestRecommendEndpoint(t *testing.T) {
	Convey("Given a server with a canned recommendation", t, func() {
		deps := &stubDeps{rec: types.Recommendation{
			UserID: "u1",
			Count:  1,
			Results: []types.RecommendedJob{
				{ID: "j1", Title: "Backend Engineer", Relevance: 88},
			},
		}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When fetching recommendations", func() {
			resp, err := http.Get(srv.URL + "/recommend/u1?top_k=5&min_relevance=40")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the body and parsed params are as sent", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("X-Request-ID"), ShouldNotBeEmpty)
				rec := decodeRecommendation(t, resp)
				So(rec.Results[0].ID, ShouldEqual, "j1")
				So(deps.lastUserID, ShouldEqual, "u1")
				So(deps.lastTopK, ShouldEqual, 5)
				So(*deps.lastMin, ShouldEqual, 40)
			})
		})

		Convey("When the user id segment is missing", func() {
			resp, err := http.Get(srv.URL + "/recommend/")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When top_k is not a number", func() {
			resp, err := http.Get(srv.URL + "/recommend/u1?top_k=lots")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the user is unknown", func() {
			deps.err = repository.ErrUserNotFound
			resp, err := http.Get(srv.URL + "/recommend/ghost")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the index is not built yet", func() {
			deps.err = index.ErrNotBuilt
			resp, err := http.Get(srv.URL + "/recommend/u1")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
		})

		Convey("When the method is POST", func() {
			resp, err := http.Post(srv.URL+"/recommend/u1", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSearchEndpoint(t *testing.T) {
	Convey("Given a server", t, func() {
		deps := &stubDeps{rec: types.Recommendation{
			UserID:      "u1",
			QueryTitles: []string{"engineer"},
			Count:       0,
			Results:     []types.RecommendedJob{},
		}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When posting a title search", func() {
			body := `{"titles":["backend engineer","data scientist"],"top_k":3,"min_relevance":10}`
			resp, err := http.Post(srv.URL+"/search/u1", "application/json", strings.NewReader(body))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the request reaches the service intact", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(deps.lastUserID, ShouldEqual, "u1")
				So(deps.lastTitles, ShouldResemble, []string{"backend engineer", "data scientist"})
				So(deps.lastTopK, ShouldEqual, 3)
				So(*deps.lastMin, ShouldEqual, 10)
			})
		})

		Convey("When the body is not JSON", func() {
			resp, err := http.Post(srv.URL+"/search/u1", "application/json", strings.NewReader("{broken"))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the method is GET", func() {
			resp, err := http.Get(srv.URL + "/search/u1")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestOperationalEndpoints(t *testing.T) {
	Convey("Given a server", t, func() {
		deps := &stubDeps{}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When hitting the health endpoint", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("When fetching stats", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			var stats map[string]any
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
			So(stats["built"], ShouldBeTrue)
		})

		Convey("When triggering a rebuild", func() {
			resp, err := http.Post(srv.URL+"/rebuild", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(deps.rebuilt, ShouldBeTrue)
		})

		Convey("When rebuilding with GET", func() {
			resp, err := http.Get(srv.URL + "/rebuild")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}
