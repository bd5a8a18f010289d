package personality_test

import (
	"testing"

	"github.com/okian/jobmatch/internal/domain/personality"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSimilarity(t *testing.T) {
	Convey("Given two personality vectors", t, func() {
		Convey("When comparing a non-zero vector with itself", func() {
			v := personality.Vector{E: 0.8, S: 0.2, T: 0.6, J: 0.4}

			Convey("Then similarity should be 1", func() {
				So(personality.Similarity(v, v), ShouldAlmostEqual, 1.0, 1e-9)
			})
		})

		Convey("When comparing in either order", func() {
			a := personality.Vector{E: 0.9, S: 0.1, T: 0.5, J: 0.3}
			b := personality.Vector{E: 0.2, S: 0.7, T: 0.4, J: 0.8}

			Convey("Then similarity should be symmetric", func() {
				So(personality.Similarity(a, b), ShouldAlmostEqual, personality.Similarity(b, a), 1e-12)
			})
		})

		Convey("When one side has zero norm", func() {
			zero := personality.Vector{}
			v := personality.Default()

			Convey("Then similarity should be 0, not a fault", func() {
				So(personality.Similarity(zero, v), ShouldEqual, 0)
				So(personality.Similarity(v, zero), ShouldEqual, 0)
			})
		})

		Convey("When both vectors are within bounds", func() {
			a := personality.Vector{E: 0.3, S: 0.3, T: 0.3, J: 0.3}
			b := personality.Vector{E: 1, S: 0, T: 0, J: 0}

			Convey("Then similarity should stay within [0,1]", func() {
				s := personality.Similarity(a, b)
				So(s, ShouldBeGreaterThanOrEqualTo, 0)
				So(s, ShouldBeLessThanOrEqualTo, 1)
			})
		})
	})
}

func TestWeightedAverage(t *testing.T) {
	Convey("Given weighted vector pairs", t, func() {
		Convey("When the pair list is empty", func() {
			got := personality.WeightedAverage(nil)

			Convey("Then the all-default vector is returned", func() {
				So(got, ShouldResemble, personality.Default())
			})
		})

		Convey("When the total weight is zero", func() {
			got := personality.WeightedAverage([]personality.Weighted{
				{Vector: personality.Vector{E: 1, S: 1, T: 1, J: 1}, Weight: 0},
			})

			Convey("Then the all-default vector is returned, not a divide-by-zero", func() {
				So(got, ShouldResemble, personality.Default())
			})
		})

		Convey("When weights differ", func() {
			got := personality.WeightedAverage([]personality.Weighted{
				{Vector: personality.Vector{E: 1, S: 0, T: 0, J: 0}, Weight: 3},
				{Vector: personality.Vector{E: 0, S: 1, T: 0, J: 0}, Weight: 1},
			})

			Convey("Then each axis is the weighted mean", func() {
				So(got.E, ShouldAlmostEqual, 0.75, 1e-9)
				So(got.S, ShouldAlmostEqual, 0.25, 1e-9)
				So(got.T, ShouldEqual, 0)
				So(got.J, ShouldEqual, 0)
			})
		})

		Convey("When inputs would push an axis out of range", func() {
			got := personality.WeightedAverage([]personality.Weighted{
				{Vector: personality.Vector{E: 1, S: 1, T: 1, J: 1}, Weight: 1},
			})

			Convey("Then every axis stays within [0,1]", func() {
				So(got.E, ShouldBeLessThanOrEqualTo, 1)
				So(got.J, ShouldBeGreaterThanOrEqualTo, 0)
			})
		})
	})
}

func TestFromDocument(t *testing.T) {
	Convey("Given raw personality documents", t, func() {
		Convey("When the document is empty", func() {
			So(personality.FromDocument(map[string]any{}), ShouldResemble, personality.Default())
		})

		Convey("When the document is nil", func() {
			So(personality.FromDocument(nil), ShouldResemble, personality.Default())
		})

		Convey("When an axis value is not numeric", func() {
			got := personality.FromDocument(map[string]any{
				"mbti": map[string]any{"E": "not-a-number", "S": 0.9},
			})

			Convey("Then the bad axis falls back to 0.5 and the rest decode", func() {
				So(got.E, ShouldEqual, 0.5)
				So(got.S, ShouldAlmostEqual, 0.9, 1e-9)
				So(got.T, ShouldEqual, 0.5)
				So(got.J, ShouldEqual, 0.5)
			})
		})

		Convey("When an axis value is a numeric string", func() {
			got := personality.FromDocument(map[string]any{
				"mbti": map[string]any{"E": "0.7", "S": "2"},
			})

			Convey("Then it is parsed and clamped like any number", func() {
				So(got.E, ShouldAlmostEqual, 0.7, 1e-9)
				So(got.S, ShouldEqual, 1)
			})
		})

		Convey("When values fall outside [0,1]", func() {
			got := personality.FromDocument(map[string]any{
				"mbti": map[string]any{"E": 3.2, "S": -1.0},
			})

			Convey("Then they are clamped into range", func() {
				So(got.E, ShouldEqual, 1)
				So(got.S, ShouldEqual, 0)
			})
		})

		Convey("When only the legacy personality field is present", func() {
			got := personality.FromDocument(map[string]any{
				"personality": map[string]any{"E": 0.1, "S": 0.2, "T": 0.3, "J": 0.4},
			})

			Convey("Then it is honored as a fallback", func() {
				So(got, ShouldResemble, personality.Vector{E: 0.1, S: 0.2, T: 0.3, J: 0.4})
			})
		})

		Convey("When mbti is present but empty", func() {
			got := personality.FromDocument(map[string]any{
				"mbti":        map[string]any{},
				"personality": map[string]any{"E": 0.9},
			})

			Convey("Then the legacy field still applies", func() {
				So(got.E, ShouldAlmostEqual, 0.9, 1e-9)
			})
		})

		Convey("When both fields are present", func() {
			got := personality.FromDocument(map[string]any{
				"mbti":        map[string]any{"E": 0.9},
				"personality": map[string]any{"E": 0.1},
			})

			Convey("Then mbti wins", func() {
				So(got.E, ShouldAlmostEqual, 0.9, 1e-9)
			})
		})
	})
}
