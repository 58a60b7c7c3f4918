package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrayfi/hrayfi-cli/pkg/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.MemStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := session.NewMemStore()
	return New(srv.URL, sessions), sessions
}

func loggedIn(t *testing.T, sessions *session.MemStore) {
	t.Helper()
	require.NoError(t, sessions.Save(&session.Session{
		AccessToken: "token-123",
		ArtisanID:   7,
	}))
}

func TestDecodeList(t *testing.T) {
	type item struct {
		ID int `json:"id"`
	}

	tests := []struct {
		name    string
		body    string
		want    []int
		wantErr bool
	}{
		{
			name: "bare array",
			body: `[{"id":1},{"id":2}]`,
			want: []int{1, 2},
		},
		{
			name: "results envelope",
			body: `{"count":2,"results":[{"id":3},{"id":4}]}`,
			want: []int{3, 4},
		},
		{
			name: "empty bare array",
			body: `[]`,
			want: []int{},
		},
		{
			name: "envelope with empty results",
			body: `{"results":[]}`,
			want: []int{},
		},
		{
			name:    "object without results fails closed",
			body:    `{"count":2,"items":[{"id":1}]}`,
			wantErr: true,
		},
		{
			name:    "scalar fails closed",
			body:    `"hello"`,
			wantErr: true,
		},
		{
			name:    "empty body fails closed",
			body:    ``,
			wantErr: true,
		},
		{
			name:    "invalid json fails closed",
			body:    `[{"id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeList[item](strings.NewReader(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			ids := make([]int, 0, len(got))
			for _, it := range got {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestListProducts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "public listing needs no token")
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`[{"id":1,"name":"Azilal Rug","price":"299.00"}]`))
	})

	items, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Azilal Rug", items[0].Name)
	assert.InDelta(t, 299.0, float64(items[0].Price), 0.001)
}

func TestListProductsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":1,"next":null,"results":[{"id":2,"name":"Bowl","price":45}]}`))
	})

	items, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
}

func TestListProductsMalformed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"id":1}]}`))
	})

	items, err := client.ListProducts(context.Background())
	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetProductNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	})

	_, err := client.GetProduct(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Not found.")
}

func TestListArtisanProductsSendsBearer(t *testing.T) {
	var gotAuth string
	client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/artisans/7/products/", r.URL.Path)
		w.Write([]byte(`[]`))
	})
	loggedIn(t, sessions)

	_, err := client.ListArtisanProducts(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestCreateProduct(t *testing.T) {
	client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/products/", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Zellige Tray", r.FormValue("name"))
		assert.Equal(t, "85.00", r.FormValue("price"))
		assert.Equal(t, "4", r.FormValue("category_id"))
		assert.Equal(t, "7", r.FormValue("artisan_id"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":11,"name":"Zellige Tray","price":"85.00"}`))
	})
	loggedIn(t, sessions)

	created, err := client.CreateProduct(context.Background(), ProductInput{
		Name:        "Zellige Tray",
		Description: "Hand-cut tiles",
		CategoryID:  4,
		RegionID:    5,
		ArtisanID:   7,
		Price:       85,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
}

func TestUpdateProductJSON(t *testing.T) {
	client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/products/11/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":11,"name":"Zellige Tray XL","price":"95.00"}`))
	})
	loggedIn(t, sessions)

	updated, err := client.UpdateProduct(context.Background(), 11, ProductInput{
		Name:       "Zellige Tray XL",
		CategoryID: 4,
		RegionID:   5,
		Price:      95,
	})
	require.NoError(t, err)
	assert.Equal(t, "Zellige Tray XL", updated.Name)
}

func TestDeleteProduct(t *testing.T) {
	t.Run("success has no body", func(t *testing.T) {
		client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/products/3/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})
		loggedIn(t, sessions)

		assert.NoError(t, client.DeleteProduct(context.Background(), 3))
	})

	t.Run("server failure surfaces the status", func(t *testing.T) {
		client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"boom"}`))
		})
		loggedIn(t, sessions)

		err := client.DeleteProduct(context.Background(), 3)
		require.Error(t, err)
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusInternalServerError, se.Status)
		assert.Equal(t, "boom", se.Detail)
	})
}

func TestLoginSavesSession(t *testing.T) {
	client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login/", r.URL.Path)
		w.Write([]byte(`{"access":"acc-1","refresh":"ref-1","artisan":{"id":7,"name":"Amina","email":"amina@example.com"}}`))
	})

	result, err := client.Login(context.Background(), "amina", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", result.Access)
	assert.Equal(t, "Amina", result.Artisan.Name)

	sess, err := sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, 7, sess.ArtisanID)
	assert.Equal(t, "amina@example.com", sess.ArtisanEmail)
}

func TestLoginRejected(t *testing.T) {
	client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "amina", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	sess, err := sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, sess, "failed login must not create a session")
}

func TestLogoutClearsSession(t *testing.T) {
	client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	loggedIn(t, sessions)

	require.NoError(t, client.Logout())
	sess, err := sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestChangeCredentials(t *testing.T) {
	client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/artisans/7/change-password/", r.URL.Path)
		w.Write([]byte(`{"detail":"ok"}`))
	})
	loggedIn(t, sessions)

	err := client.ChangeCredentials(context.Background(), 7, CredentialsInput{
		Email:           "amina@example.com",
		Username:        "amina",
		CurrentPassword: "old",
		NewPassword:     "new",
	})
	assert.NoError(t, err)
}

func TestRequestError(t *testing.T) {
	client := New("http://127.0.0.1:1", session.NewMemStore())

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	var re *RequestError
	assert.ErrorAs(t, err, &re)
}

func TestChat(t *testing.T) {
	t.Run("no endpoint configured", func(t *testing.T) {
		client := New("http://example.invalid", session.NewMemStore())
		_, err := client.Chat(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrNoChatEndpoint)
	})

	t.Run("answer round trip", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"answer":"We ship worldwide."}`))
		}))
		defer srv.Close()

		client := New("http://example.invalid", session.NewMemStore())
		client.SetChatURL(srv.URL)

		answer, err := client.Chat(context.Background(), "do you ship?")
		require.NoError(t, err)
		assert.Equal(t, "We ship worldwide.", answer)
	})

	t.Run("empty answer is malformed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"answer":""}`))
		}))
		defer srv.Close()

		client := New("http://example.invalid", session.NewMemStore())
		client.SetChatURL(srv.URL)

		_, err := client.Chat(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}
