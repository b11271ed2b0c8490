package fantasycalc

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/cole-dav/sleeper-draft-tool/testutils"
)

func TestGetValues_success(t *testing.T) {
	fakeValues := testutils.NewFakeValuesServer()
	defer fakeValues.Close()

	c := NewForTest(fakeValues.URL())

	values, err := c.GetValues(ValueParams{Dynasty: true, NumQBs: 1, NumTeams: 4, PPR: 1})
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	// The fixture contains one entry without a sleeper id, which has no
	// use to the needs engine and is dropped.
	expected := map[string]float64{
		"6904":  4000,
		"4984":  5000,
		"9509":  7000,
		"8155":  5500,
		"6786":  6500,
		"2374":  1200,
		"5844":  2500,
		"11596": 900,
	}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("expected values to be: %v, but was: %v", expected, values)
	}
}

func TestGetValues_cachedPerParams(t *testing.T) {
	fakeValues := testutils.NewFakeValuesServer()
	defer fakeValues.Close()

	c := NewForTest(fakeValues.URL())

	params := ValueParams{Dynasty: true, NumQBs: 1, NumTeams: 4, PPR: 1}
	if _, err := c.GetValues(params); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if _, err := c.GetValues(params); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if got := fakeValues.Requests.Load(); got != 1 {
		t.Errorf("expected 1 request for repeated params, got %d", got)
	}

	// A different scoring context misses the cache.
	other := ValueParams{Dynasty: true, NumQBs: 2, NumTeams: 4, PPR: 1}
	if _, err := c.GetValues(other); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if got := fakeValues.Requests.Load(); got != 2 {
		t.Errorf("expected 2 requests after a new parameter set, got %d", got)
	}
}

func TestGetValues_httpError(t *testing.T) {
	fakeValues := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
	}))
	defer fakeValues.Close()

	c := NewForTest(fakeValues.URL)

	values, err := c.GetValues(ValueParams{Dynasty: true, NumQBs: 1, NumTeams: 4, PPR: 1})
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if values != nil {
		t.Fatalf("values should have been nil")
	}
}
