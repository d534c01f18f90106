package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// MockServer is an in-memory stand-in for the Memphora API. Individual
// routes can be overridden per test via the custom handlers.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	memories map[string]types.Memory
	nextID   int
	requests int

	customAdd    http.HandlerFunc
	customGet    http.HandlerFunc
	customSearch http.HandlerFunc
}

func NewMockServer() *MockServer {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	mock := &MockServer{
		Server:   server,
		memories: map[string]types.Memory{},
	}

	mux.HandleFunc("/memories", mock.handleAdd)
	mux.HandleFunc("/memories/search", mock.handleSearch)
	mux.HandleFunc("/memories/", mock.handleGet)

	return mock
}

func (s *MockServer) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *MockServer) handleAdd(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	if s.customAdd != nil {
		s.customAdd(w, r)
		return
	}

	var body struct {
		UserID   string         `json:"user_id"`
		Content  string         `json:"content"`
		Metadata map[string]any `json:"metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	memory := types.Memory{
		ID:       fmt.Sprintf("mem-%d", s.nextID),
		UserID:   body.UserID,
		Content:  body.Content,
		Metadata: body.Metadata,
	}
	s.memories[memory.ID] = memory
	s.mu.Unlock()

	json.NewEncoder(w).Encode(memory)
}

func (s *MockServer) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	if s.customGet != nil {
		s.customGet(w, r)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/memories/")

	s.mu.Lock()
	defer s.mu.Unlock()

	memory, ok := s.memories[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "memory not found"})
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body struct {
			Content  *string        `json:"content"`
			Metadata map[string]any `json:"metadata"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body.Content != nil {
			memory.Content = *body.Content
		}
		if body.Metadata != nil {
			memory.Metadata = body.Metadata
		}
		memory.Version++
		s.memories[id] = memory
		json.NewEncoder(w).Encode(memory)

	case http.MethodDelete:
		delete(s.memories, id)
		json.NewEncoder(w).Encode(map[string]bool{"deleted": true})

	default:
		json.NewEncoder(w).Encode(memory)
	}
}

func (s *MockServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	if s.customSearch != nil {
		s.customSearch(w, r)
		return
	}

	var body struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	results := []types.Memory{}
	for _, memory := range s.memories {
		if len(results) >= body.Limit {
			break
		}
		memory.Score = 0.9
		results = append(results, memory)
	}
	s.mu.Unlock()

	json.NewEncoder(w).Encode(results)
}

func TestNew(t *testing.T) {
	Convey("Given a new client", t, func() {
		Convey("An empty base URL selects production", func() {
			client := New("", "key")
			So(client.BaseURL(), ShouldEqual, DefaultBaseURL)
		})

		Convey("A trailing slash is trimmed", func() {
			client := New("http://localhost:8000/", "key")
			So(client.BaseURL(), ShouldEqual, "http://localhost:8000")
		})
	})
}

func TestAddMemory(t *testing.T) {
	Convey("Given a client against a mock server", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := New(server.URL, "test-key")

		Convey("When storing a valid memory", func() {
			memory, err := client.AddMemory(t.Context(), "user-1", "likes coffee", nil)

			Convey("Then the created memory is returned", func() {
				So(err, ShouldBeNil)
				So(memory.ID, ShouldNotBeEmpty)
				So(memory.Content, ShouldEqual, "likes coffee")
			})
		})

		Convey("When the content is blank", func() {
			memory, err := client.AddMemory(t.Context(), "user-1", "", nil)

			Convey("Then a ValidationError is returned without a request", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
				So(memory, ShouldBeNil)
				So(server.Requests(), ShouldEqual, 0)
			})
		})

		Convey("When the user id is blank", func() {
			_, err := client.AddMemory(t.Context(), "", "likes coffee", nil)

			So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
			So(server.Requests(), ShouldEqual, 0)
		})

		Convey("When the API rejects the credentials", func() {
			server.customAdd = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "invalid api key"})
			}

			_, err := client.AddMemory(t.Context(), "user-1", "likes coffee", nil)

			Convey("Then an AuthenticationError is returned", func() {
				So(err, ShouldHaveSameTypeAs, &apierrors.AuthenticationError{})
				So(err.Error(), ShouldContainSubstring, "invalid api key")
			})
		})

		Convey("When the server is unreachable", func() {
			server.Close()

			_, err := client.AddMemory(t.Context(), "user-1", "likes coffee", nil)

			Convey("Then a ConnectionError is returned", func() {
				So(err, ShouldHaveSameTypeAs, &apierrors.ConnectionError{})
			})
		})
	})
}

func TestRequestHeaders(t *testing.T) {
	Convey("Given a client with an API key", t, func() {
		server := NewMockServer()
		defer server.Close()

		var captured http.Header
		server.customAdd = func(w http.ResponseWriter, r *http.Request) {
			captured = r.Header.Clone()
			json.NewEncoder(w).Encode(types.Memory{ID: "mem-1"})
		}

		client := New(server.URL, "secret-key")
		_, err := client.AddMemory(t.Context(), "user-1", "likes coffee", nil)
		So(err, ShouldBeNil)

		Convey("Every request carries auth and tracing headers", func() {
			So(captured.Get("Authorization"), ShouldEqual, "Bearer secret-key")
			So(captured.Get("Content-Type"), ShouldEqual, "application/json")
			So(captured.Get("X-Request-ID"), ShouldNotBeEmpty)
		})
	})
}

func TestRetry(t *testing.T) {
	Convey("Given a client with a short retry delay", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := New(server.URL, "key", WithRetryDelay(time.Millisecond))

		Convey("When the server fails twice then recovers", func() {
			var calls int
			server.customGet = func(w http.ResponseWriter, r *http.Request) {
				calls++
				if calls <= 2 {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				json.NewEncoder(w).Encode(types.Memory{ID: "mem-1", Content: "recovered"})
			}

			memory, err := client.GetMemory(t.Context(), "mem-1")

			Convey("Then the request eventually succeeds", func() {
				So(err, ShouldBeNil)
				So(memory.Content, ShouldEqual, "recovered")
				So(calls, ShouldEqual, 3)
			})
		})

		Convey("When the server keeps failing", func() {
			var calls int
			server.customGet = func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(http.StatusServiceUnavailable)
			}

			_, err := client.GetMemory(t.Context(), "mem-1")

			Convey("Then a ServerError surfaces after all retries", func() {
				So(err, ShouldHaveSameTypeAs, &apierrors.ServerError{})
				So(calls, ShouldEqual, 4)
			})
		})

		Convey("When the client is rate limited with retries disabled", func() {
			limited := New(server.URL, "key", WithMaxRetries(0))
			server.customGet = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"detail": "slow down"})
			}

			_, err := limited.GetMemory(t.Context(), "mem-1")

			Convey("Then a RateLimitError is returned", func() {
				So(err, ShouldHaveSameTypeAs, &apierrors.RateLimitError{})
			})
		})

		Convey("When a 400 response is returned", func() {
			var calls int
			server.customGet = func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"detail": "bad id"})
			}

			_, err := client.GetMemory(t.Context(), "mem-1")

			Convey("Then it is not retried", func() {
				So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
				So(calls, ShouldEqual, 1)
			})
		})
	})
}

func TestGetMemory(t *testing.T) {
	Convey("Given a client against a mock server", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := New(server.URL, "key")

		Convey("When fetching a stored memory", func() {
			created, err := client.AddMemory(t.Context(), "user-1", "likes coffee", nil)
			So(err, ShouldBeNil)

			memory, err := client.GetMemory(t.Context(), created.ID)

			Convey("Then the memory is returned", func() {
				So(err, ShouldBeNil)
				So(memory.Content, ShouldEqual, "likes coffee")
			})
		})

		Convey("When the memory does not exist", func() {
			memory, err := client.GetMemory(t.Context(), "missing")

			Convey("Then a NotFoundError is returned", func() {
				So(err, ShouldHaveSameTypeAs, &apierrors.NotFoundError{})
				So(memory, ShouldBeNil)
			})
		})

		Convey("When the response is invalid JSON", func() {
			server.customGet = func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte("invalid json"))
			}

			memory, err := client.GetMemory(t.Context(), "mem-1")

			Convey("Then a DecodingError is returned", func() {
				So(err, ShouldHaveSameTypeAs, &apierrors.DecodingError{})
				So(memory, ShouldBeNil)
			})
		})
	})
}

func TestUpdateMemory(t *testing.T) {
	Convey("Given a stored memory", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := New(server.URL, "key")

		created, err := client.AddMemory(t.Context(), "user-1", "likes coffee", nil)
		So(err, ShouldBeNil)

		Convey("When updating its content", func() {
			content := "prefers tea"
			updated, err := client.UpdateMemory(t.Context(), created.ID, &content, nil)

			So(err, ShouldBeNil)
			So(updated.Content, ShouldEqual, "prefers tea")
			So(updated.Version, ShouldEqual, created.Version+1)

			Convey("Then a subsequent fetch sees the new content", func() {
				fetched, err := client.GetMemory(t.Context(), created.ID)

				So(err, ShouldBeNil)
				So(fetched.Content, ShouldEqual, "prefers tea")
			})
		})

		Convey("When updating with a blank id", func() {
			content := "prefers tea"
			_, err := client.UpdateMemory(t.Context(), "", &content, nil)

			So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
		})
	})
}

func TestDeleteMemory(t *testing.T) {
	Convey("Given a stored memory", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := New(server.URL, "key")

		created, err := client.AddMemory(t.Context(), "user-1", "likes coffee", nil)
		So(err, ShouldBeNil)

		Convey("When deleting it", func() {
			err := client.DeleteMemory(t.Context(), created.ID)
			So(err, ShouldBeNil)

			Convey("Then a subsequent fetch yields a NotFoundError", func() {
				_, err := client.GetMemory(t.Context(), created.ID)

				So(err, ShouldHaveSameTypeAs, &apierrors.NotFoundError{})
			})
		})
	})
}

func TestSearchMemories(t *testing.T) {
	Convey("Given a client with stored memories", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := New(server.URL, "key")

		_, err := client.AddMemory(t.Context(), "user-1", "likes coffee", nil)
		So(err, ShouldBeNil)

		Convey("When searching", func() {
			memories, err := client.SearchMemories(t.Context(), "user-1", "coffee", SearchOptions{Limit: 5})

			Convey("Then scored results are returned", func() {
				So(err, ShouldBeNil)
				So(len(memories), ShouldEqual, 1)
				So(memories[0].Relevance(), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the limit is omitted", func() {
			var body map[string]any
			server.customSearch = func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&body)
				json.NewEncoder(w).Encode([]types.Memory{})
			}

			_, err := client.SearchMemories(t.Context(), "user-1", "coffee", SearchOptions{})

			Convey("Then the default limit is applied", func() {
				So(err, ShouldBeNil)
				So(body["limit"], ShouldEqual, 5)
			})
		})

		Convey("When the query is blank", func() {
			_, err := client.SearchMemories(t.Context(), "user-1", "", SearchOptions{})

			So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
		})
	})
}
