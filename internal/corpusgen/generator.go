package corpusgen

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/okian/jobmatch/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	maxPostingAgeDays  = 400
	minSkillsPerDoc    = 2
	maxSkillsPerDoc    = 6
	bareVectorOdds     = 5 // one in N jobs ships without a personality doc
)

// Title, skill and company pools. Titles deliberately share tokens so fuzzy
// matching has realistic near-misses to chew on.
var (
	titles = []string{
		"Backend Engineer", "Senior Backend Engineer", "Backend Developer",
		"Frontend Engineer", "Frontend Developer", "Full Stack Engineer",
		"Data Scientist", "Data Engineer", "Machine Learning Engineer",
		"Site Reliability Engineer", "DevOps Engineer", "Platform Engineer",
		"Product Manager", "Engineering Manager", "QA Engineer",
		"Mobile Developer", "Security Engineer", "Database Administrator",
	}
	skills = []string{
		"go", "python", "java", "typescript", "rust", "sql", "postgresql",
		"kubernetes", "docker", "terraform", "aws", "gcp", "kafka", "redis",
		"react", "grpc", "prometheus", "linux", "git", "ci/cd",
	}
	companies = []string{
		"acme corp", "initech", "globex", "umbrella systems", "hooli",
		"stark industries", "wayne enterprises", "tyrell corp",
	}
	educations = []string{
		"BSc Computer Science", "MSc Computer Science", "BSc Engineering",
		"Bootcamp Graduate", "Self-taught",
	}
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randIndex returns a random int in [0, n).
func randIndex(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// sampleStrings picks between min and max distinct entries from pool.
func sampleStrings(pool []string, min, max int) []string {
	count := min + randIndex(max-min+1)
	if count > len(pool) {
		count = len(pool)
	}
	picked := make(map[int]struct{}, count)
	out := make([]string, 0, count)
	for len(out) < count {
		i := randIndex(len(pool))
		if _, dup := picked[i]; dup {
			continue
		}
		picked[i] = struct{}{}
		out = append(out, pool[i])
	}
	return out
}

// randomVectorDoc builds an MBTI-style axis document with random axis values.
func randomVectorDoc() map[string]any {
	return map[string]any{
		"E": getRandomFloat(),
		"S": getRandomFloat(),
		"T": getRandomFloat(),
		"J": getRandomFloat(),
	}
}

// randomPublishDate returns an RFC3339 date up to maxPostingAgeDays old, so a
// generated corpus exercises the whole recency decay range.
func randomPublishDate() string {
	age := time.Duration(randIndex(maxPostingAgeDays*24)) * time.Hour
	return time.Now().UTC().Add(-age).Format(time.RFC3339)
}

// generateJobs creates synthetic job documents in the corpus file shape.
func generateJobs(ctx context.Context, config *Config, stats *Stats) []map[string]any {
	logger.Get().Info(ctx, "generating job documents", logger.Int("numJobs", config.NumJobs))

	docs := make([]map[string]any, config.NumJobs)
	for i := range docs {
		title := titles[randIndex(len(titles))]
		doc := map[string]any{
			"id":           uuid.New().String(),
			"title":        title,
			"company":      companies[randIndex(len(companies))],
			"apply_link":   "https://jobs.example.com/" + uuid.New().String(),
			"description":  "We are hiring a " + title + ".",
			"publish_date": randomPublishDate(),
			"locations":    sampleStrings([]string{"remote", "berlin", "london", "new york", "tehran"}, 1, 2),
			"skills":       sampleStrings(skills, minSkillsPerDoc, maxSkillsPerDoc),
			"education":    sampleStrings(educations, 1, 2),
		}
		if randIndex(bareVectorOdds) != 0 {
			doc["mbti"] = randomVectorDoc()
		}
		docs[i] = doc
	}

	stats.JobsGenerated = len(docs)
	return docs
}

// generateUsers creates synthetic user profile documents.
func generateUsers(ctx context.Context, config *Config, stats *Stats) []map[string]any {
	logger.Get().Info(ctx, "generating user profiles", logger.Int("numUsers", config.NumUsers))

	docs := make([]map[string]any, config.NumUsers)
	for i := range docs {
		docs[i] = map[string]any{
			"id":     uuid.New().String(),
			"skills": sampleStrings(skills, minSkillsPerDoc, maxSkillsPerDoc),
			"mbti":   randomVectorDoc(),
		}
	}

	stats.UsersGenerated = len(docs)
	return docs
}
