package orcid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const worksFixture = `{
  "group": [
    {
      "work-summary": [
        {
          "put-code": 101,
          "type": "journal-article",
          "title": {"title": {"value": "Deep Learning for Arabic OCR"}},
          "publication-date": {"year": {"value": "2021"}},
          "journal-title": {"value": "IEEE Access"},
          "external-ids": {"external-id": [
            {"external-id-type": "issn", "external-id-value": "2169-3536"},
            {"external-id-type": "doi", "external-id-value": "10.1109/ACCESS.2021.1234"}
          ]},
          "url": {"value": "https://example.org/paper"}
        },
        {
          "put-code": 102,
          "type": "journal-article",
          "title": {"title": {"value": "Deep Learning for Arabic OCR"}}
        }
      ]
    },
    {
      "work-summary": [
        {
          "put-code": 201,
          "type": "conference-paper",
          "title": {"title": {"value": "Second Work"}}
        }
      ]
    }
  ]
}`

func worksServer(t *testing.T, status int, body string) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q", got)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "0000-0003-2058-3648")
}

func TestFetchWorksKeepsFirstSummaryPerGroup(t *testing.T) {
	_, client := worksServer(t, http.StatusOK, worksFixture)

	res, err := client.FetchWorks(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if len(res.Researches) != 2 {
		t.Fatalf("expected 2 works (one per group), got %d", len(res.Researches))
	}

	first := res.Researches[0]
	if first.PutCode == nil || *first.PutCode != 101 {
		t.Errorf("expected first summary's put_code 101, got %v", first.PutCode)
	}
	if first.Title != "Deep Learning for Arabic OCR" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Year == nil || *first.Year != "2021" {
		t.Errorf("year = %v", first.Year)
	}
	if first.Journal == nil || *first.Journal != "IEEE Access" {
		t.Errorf("journal = %v", first.Journal)
	}
	if first.DOI == nil || *first.DOI != "10.1109/ACCESS.2021.1234" {
		t.Errorf("doi = %v (want the doi-typed external id)", first.DOI)
	}
	if first.URL == nil || *first.URL != "https://example.org/paper" {
		t.Errorf("url = %v", first.URL)
	}
}

func TestFetchWorksDefensiveAgainstMissingNesting(t *testing.T) {
	_, client := worksServer(t, http.StatusOK, worksFixture)

	res, err := client.FetchWorks(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	second := res.Researches[1]
	if second.Journal != nil {
		t.Errorf("missing journal-title should yield nil, got %v", *second.Journal)
	}
	if second.Year != nil {
		t.Errorf("missing publication-date should yield nil, got %v", *second.Year)
	}
	if second.DOI != nil {
		t.Errorf("missing external-ids should yield nil, got %v", *second.DOI)
	}
	if second.Title != "Second Work" {
		t.Errorf("title = %q", second.Title)
	}
}

func TestFetchWorksDefaultsTitleAndType(t *testing.T) {
	_, client := worksServer(t, http.StatusOK, `{"group":[{"work-summary":[{"put-code": 1}]}]}`)

	res, err := client.FetchWorks(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	w := res.Researches[0]
	if w.Title != "No title" {
		t.Errorf("title default = %q", w.Title)
	}
	if w.Type != "Unknown" {
		t.Errorf("type default = %q", w.Type)
	}
}

func TestFetchWorksUpstreamFailureBecomesData(t *testing.T) {
	_, client := worksServer(t, http.StatusServiceUnavailable, `{"error":"down"}`)

	res, err := client.FetchWorks(context.Background())
	if err != nil {
		t.Fatalf("upstream failure must not cross the boundary as an error: %v", err)
	}
	if res.Success {
		t.Fatal("expected failure result")
	}
	if res.Error != "Failed to fetch researches" {
		t.Errorf("error message = %q", res.Error)
	}
	if res.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d", res.Status)
	}
	if len(res.Researches) != 0 {
		t.Errorf("failure result carries works: %v", res.Researches)
	}
}

func TestFetchWorkPassesRecordThroughUnshaped(t *testing.T) {
	record := `{"put-code":101,"title":{"title":{"value":"Full Record"}},"contributors":{}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/0000-0003-2058-3648/work/101" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(record))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "0000-0003-2058-3648")

	res, err := client.FetchWork(context.Background(), "101")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if string(res.Record) != record {
		t.Errorf("record reshaped: %s", res.Record)
	}
}

func TestFetchWorkUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "0000-0003-2058-3648")

	res, err := client.FetchWork(context.Background(), "999")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if res.Success {
		t.Fatal("expected failure result")
	}
	if res.Error != "Failed to fetch work" || res.Status != http.StatusNotFound {
		t.Errorf("failure = %+v", res)
	}
}
