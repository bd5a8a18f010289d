package match_test

import (
	"testing"

	"github.com/okian/jobmatch/internal/domain/match"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBestMatch(t *testing.T) {
	Convey("Given a matcher with the default scorer", t, func() {
		m := match.New()

		Convey("When the candidate list is empty", func() {
			_, ok := m.BestMatch("software engineer", nil, 0)

			Convey("Then no match is reported", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a candidate equals the query", func() {
			got, ok := m.BestMatch("software engineer", []string{"plumber", "software engineer"}, 70)

			Convey("Then it wins with a perfect score", func() {
				So(ok, ShouldBeTrue)
				So(got.Value, ShouldEqual, "software engineer")
				So(got.Index, ShouldEqual, 1)
				So(got.Score, ShouldEqual, 100)
			})
		})

		Convey("When word order differs", func() {
			got, ok := m.BestMatch("engineer software", []string{"software engineer"}, 90)

			Convey("Then token sorting still yields a high score", func() {
				So(ok, ShouldBeTrue)
				So(got.Score, ShouldEqual, 100)
			})
		})

		Convey("When nothing clears the threshold", func() {
			_, ok := m.BestMatch("florist", []string{"kernel developer"}, 95)

			Convey("Then no match is reported", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given a matcher with a constant scorer", t, func() {
		m := match.New(match.WithScorer(func(a, b string) int { return 80 }))

		Convey("When all candidates tie", func() {
			got, ok := m.BestMatch("q", []string{"first", "second", "third"}, 50)

			Convey("Then the first occurrence wins", func() {
				So(ok, ShouldBeTrue)
				So(got.Value, ShouldEqual, "first")
				So(got.Index, ShouldEqual, 0)
			})
		})
	})
}

func TestTopMatches(t *testing.T) {
	Convey("Given a matcher", t, func() {
		m := match.New()

		Convey("When the candidate list is empty", func() {
			got := m.TopMatches("anything", nil, 0, 10)

			Convey("Then the result is empty, not an error", func() {
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When several candidates clear the threshold", func() {
			candidates := []string{"software engineer", "senior software engineer", "gardener"}
			got := m.TopMatches("software engineer", candidates, 60, 10)

			Convey("Then they come back ordered by descending score", func() {
				So(len(got), ShouldBeGreaterThanOrEqualTo, 2)
				So(got[0].Value, ShouldEqual, "software engineer")
				for i := 1; i < len(got); i++ {
					So(got[i].Score, ShouldBeLessThanOrEqualTo, got[i-1].Score)
				}
			})
		})

		Convey("When a limit is set", func() {
			candidates := []string{"engineer", "engineer ", "engineers", "engineering"}
			got := m.TopMatches("engineer", candidates, 10, 2)

			Convey("Then at most limit matches are returned", func() {
				So(len(got), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a matcher with a constant scorer", t, func() {
		m := match.New(match.WithScorer(func(a, b string) int { return 70 }))

		Convey("When all scores tie", func() {
			got := m.TopMatches("q", []string{"a", "b", "c"}, 70, 0)

			Convey("Then candidate order is preserved", func() {
				So(len(got), ShouldEqual, 3)
				So(got[0].Index, ShouldEqual, 0)
				So(got[1].Index, ShouldEqual, 1)
				So(got[2].Index, ShouldEqual, 2)
			})
		})
	})
}
