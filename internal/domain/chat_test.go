package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterEnrichments(t *testing.T) {
	p1 := Product{ID: 1, Title: "Hair Vitamins"}
	p3 := Product{ID: 3, Title: "Scalp Oil"}

	results := []EnrichmentResult{
		{ProductID: 1, Reason: "A", Product: &p1},
		{ProductID: 2, Reason: "B", Err: errors.New("lookup failed")},
		{ProductID: 3, Reason: "C", Product: &p3},
	}

	got := FilterEnrichments(results)

	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Product.ID)
	assert.Equal(t, "A", got[0].Reason)
	assert.Equal(t, 3, got[1].Product.ID)
	assert.Equal(t, "C", got[1].Reason)
}

func TestFilterEnrichmentsAllFailed(t *testing.T) {
	results := []EnrichmentResult{
		{ProductID: 1, Reason: "A", Err: errors.New("boom")},
	}
	assert.Empty(t, FilterEnrichments(results))
}
