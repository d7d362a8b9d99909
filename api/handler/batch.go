package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	random "github.com/mazen160/go-random"

	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/webhook"
)

const (
	batchConcurrency = 3
	batchExpiry      = 24 * time.Hour
	batchSearchLimit = 2 * time.Minute

	defaultBatchResults = 10

	statusScraping  = "scraping"
	statusCompleted = "completed"

	// EventBatchCompleted is sent when every query of a batch has finished.
	EventBatchCompleted = "batch.completed"
)

// batchJob guards a models.BatchJob that the worker goroutines fill in.
type batchJob struct {
	mu  sync.Mutex
	job models.BatchJob
}

func (b *batchJob) snapshot() models.BatchStatusResponse {
	b.mu.Lock()
	defer b.mu.Unlock()
	results := make([]*models.BatchResult, 0, len(b.job.Results))
	for _, r := range b.job.Results {
		if r != nil {
			results = append(results, r)
		}
	}
	return models.BatchStatusResponse{
		ID:        b.job.ID,
		Status:    b.job.Status,
		Completed: b.job.Completed,
		Total:     b.job.Total,
		Results:   results,
	}
}

// Batches holds in-flight and finished batch jobs.
type Batches struct {
	jobs     sync.Map
	searcher Searcher
	notifier Notifier
	now      func() time.Time
}

// NewBatches creates the job registry. Jobs older than 24 h are dropped by
// a sweeper that stops when ctx is done.
func NewBatches(ctx context.Context, s Searcher, n Notifier) *Batches {
	b := &Batches{searcher: s, notifier: n, now: time.Now}
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.expire()
			}
		}
	}()
	return b
}

func (b *Batches) expire() {
	cutoff := b.now().Add(-batchExpiry).Unix()
	b.jobs.Range(func(key, value any) bool {
		j := value.(*batchJob)
		j.mu.Lock()
		old := j.job.Status == statusCompleted && j.job.CreatedAt < cutoff
		j.mu.Unlock()
		if old {
			b.jobs.Delete(key)
		}
		return true
	})
}

// Post returns a handler for POST /api/batch/competitor-search.
// It registers the job and searches in the background.
func (b *Batches) Post() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Between 1 and 20 search queries are required",
				"code":  models.ErrCodeInvalidInput,
			})
			return
		}
		if req.MaxResults <= 0 {
			req.MaxResults = defaultBatchResults
		}

		id, err := random.String(16)
		if err != nil {
			failed(c, "Failed to start batch", err, false)
			return
		}
		j := &batchJob{job: models.BatchJob{
			ID:        "batch-" + id,
			Status:    statusScraping,
			Total:     len(req.Queries),
			Results:   make([]*models.BatchResult, len(req.Queries)),
			CreatedAt: b.now().Unix(),
		}}
		b.jobs.Store(j.job.ID, j)

		go b.run(j, req)

		c.JSON(http.StatusOK, models.BatchResponse{
			Success: true,
			ID:      j.job.ID,
			Status:  statusScraping,
			Total:   len(req.Queries),
		})
	}
}

// Get returns a handler for GET /api/batch/:id.
func (b *Batches) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := b.jobs.Load(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Batch job not found",
				"code":  models.ErrCodeInvalidInput,
			})
			return
		}
		c.JSON(http.StatusOK, val.(*batchJob).snapshot())
	}
}

// run searches every query with at most batchConcurrency in flight.
func (b *Batches) run(j *batchJob, req models.BatchRequest) {
	sem := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup

	for i, query := range req.Queries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res := b.searchOne(query, req.MaxResults)

			j.mu.Lock()
			j.job.Results[i] = res
			j.job.Completed++
			j.mu.Unlock()
		}()
	}
	wg.Wait()

	j.mu.Lock()
	j.job.Status = statusCompleted
	j.mu.Unlock()

	status := j.snapshot()
	slog.Info("batch job finished",
		slog.String("id", status.ID),
		slog.Int("total", status.Total),
	)
	if b.notifier != nil {
		b.notifier.DeliverAsync(&webhook.Event{
			Type:      EventBatchCompleted,
			ID:        status.ID,
			Timestamp: b.now().Unix(),
			Data:      status,
		})
	}
}

func (b *Batches) searchOne(query string, maxResults int) *models.BatchResult {
	ctx, cancel := context.WithTimeout(context.Background(), batchSearchLimit)
	defer cancel()

	cs, err := b.searcher.SearchCompetitors(ctx, query, maxResults)
	res := &models.BatchResult{Query: query, Competitors: cs, TotalFound: len(cs)}
	if err != nil {
		var se *models.ScrapeError
		if !errors.As(err, &se) {
			se = models.NewScrapeError(models.ErrCodeInternal, err.Error(), err)
		}
		res.Error = se.ToDetail()
	}
	if res.Competitors == nil {
		res.Competitors = []models.Competitor{}
	}
	return res
}
