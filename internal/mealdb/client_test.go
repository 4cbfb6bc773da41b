package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(srv.URL, zap.NewNop(),
		WithHTTPClient(srv.Client()),
		WithBackOff(func() backoff.BackOff { return backoff.NewConstantBackOff(time.Millisecond) }),
	)
}

func TestLookupByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup.php", r.URL.Path)
		assert.Equal(t, "52772", r.URL.Query().Get("i"))
		w.Write([]byte(`{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken","strIngredient1":"soy sauce"}]}`))
	})

	meal, err := c.LookupByID(context.Background(), "52772")
	require.NoError(t, err)
	assert.Equal(t, "Teriyaki Chicken", meal["strMeal"])
	assert.Equal(t, "soy sauce", meal["strIngredient1"])
}

func TestLookupByID_NullMeals(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	})

	_, err := c.LookupByID(context.Background(), "0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"meals":[{"strMeal":"Pie"}]}`))
	})

	meal, err := c.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pie", meal["strMeal"])
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryGivesUp(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Random(context.Background())
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusTooManyRequests, serr.Code)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Search(context.Background(), "chicken")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRandomN_ToleratesFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1)%2 == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"meals":[{"strMeal":"Random"}]}`))
	})

	meals, err := c.RandomN(context.Background(), 6)
	require.NoError(t, err)
	assert.NotEmpty(t, meals)
	assert.Less(t, len(meals), 6)
	for _, m := range meals {
		assert.Equal(t, "Random", m["strMeal"])
	}
}

func TestRandomN_AllFail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.RandomN(context.Background(), 3)
	assert.Error(t, err)

	meals, err := c.RandomN(context.Background(), 0)
	assert.NoError(t, err)
	assert.Empty(t, meals)
}
