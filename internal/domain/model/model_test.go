package model_test

import (
	"testing"

	"github.com/okian/jobmatch/internal/domain/model"
	"github.com/okian/jobmatch/internal/domain/personality"
	. "github.com/smartystreets/goconvey/convey"
)

func TestJobFromDocument(t *testing.T) {
	Convey("Given raw job documents", t, func() {
		Convey("When the document uses canonical fields", func() {
			job := model.JobFromDocument(map[string]any{
				"id":           "job-1",
				"title":        "Software Engineer",
				"company":      "Acme",
				"apply_link":   "https://acme.example/jobs/1",
				"description":  "builds things",
				"publish_date": "2026-08-01T00:00:00Z",
				"locations":    []any{"Berlin", "Remote"},
				"skills":       []any{"Python", "SQL"},
				"education":    []any{"BSc"},
			})

			Convey("Then every field decodes", func() {
				So(job.ID, ShouldEqual, "job-1")
				So(job.Title, ShouldEqual, "Software Engineer")
				So(job.Company, ShouldEqual, "Acme")
				So(*job.PublishDate, ShouldEqual, "2026-08-01T00:00:00Z")
				So(job.Locations, ShouldResemble, []string{"Berlin", "Remote"})
				So(job.Skills, ShouldResemble, []string{"Python", "SQL"})
				So(job.Personality, ShouldResemble, personality.Default())
			})
		})

		Convey("When the document uses legacy fallbacks", func() {
			job := model.JobFromDocument(map[string]any{
				"_id":        "64fe",
				"title":      "Data Analyst",
				"created_at": "2026-01-15T10:00:00Z",
				"location":   "Oslo",
			})

			Convey("Then _id, created_at and scalar location are honored", func() {
				So(job.ID, ShouldEqual, "64fe")
				So(*job.PublishDate, ShouldEqual, "2026-01-15T10:00:00Z")
				So(job.Locations, ShouldResemble, []string{"Oslo"})
			})
		})

		Convey("When the document has no date", func() {
			job := model.JobFromDocument(map[string]any{"title": "Cook"})

			Convey("Then PublishDate is nil", func() {
				So(job.PublishDate, ShouldBeNil)
			})
		})

		Convey("When the document carries an embedded personality", func() {
			job := model.JobFromDocument(map[string]any{
				"title": "Therapist",
				"mbti":  map[string]any{"E": 0.9, "S": 0.1},
			})

			Convey("Then the vector decodes with missing axes defaulted", func() {
				So(job.Personality.E, ShouldAlmostEqual, 0.9, 1e-9)
				So(job.Personality.T, ShouldEqual, 0.5)
			})
		})
	})
}

func TestUserFromDocument(t *testing.T) {
	Convey("Given raw user documents", t, func() {
		Convey("When the profile is complete", func() {
			u := model.UserFromDocument(map[string]any{
				"id":          "u1",
				"skills":      []any{"go", "sql"},
				"personality": map[string]any{"E": 0.2, "S": 0.4, "T": 0.6, "J": 0.8},
			})

			So(u.ID, ShouldEqual, "u1")
			So(u.Skills, ShouldResemble, []string{"go", "sql"})
			So(u.Personality, ShouldResemble, personality.Vector{E: 0.2, S: 0.4, T: 0.6, J: 0.8})
		})

		Convey("When the personality is unset", func() {
			u := model.UserFromDocument(map[string]any{"id": "u2"})

			Convey("Then the vector defaults and skills are empty", func() {
				So(u.Personality, ShouldResemble, personality.Default())
				So(u.Skills, ShouldBeEmpty)
			})
		})
	})
}
