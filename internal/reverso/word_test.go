package reverso

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contextPageFixture = `<!DOCTYPE html>
<html><body>
<div id="translations-content" class="wide-container">
  <a class="translation ltr dict n" href="/translation/german-russian/Haus">
    <div class="pos-mark"><span class="n" title="Noun"></span></div>
    <span class="display-term"> дом </span>
  </a>
  <a class="translation ltr dict no-pos">
    <span class="display-term">здание</span>
  </a>
  <div class="translation rtl">
    <span class="other">no headword here</span>
  </div>
</div>
<section id="examples-content">
  <div class="example">
    <div class="src ltr"><span class="text">Das <em>Haus</em> ist alt.</span></div>
    <div class="trg ltr"><span class="text">Этот <a class="link_highlighted" href="#"><em>дом</em></a> старый.</span></div>
  </div>
  <div class="example">
    <div class="src ltr"><span class="text">Nur eine Seite.</span></div>
  </div>
  <div class="example blocked">
    <div class="src ltr"><span class="text"> Im <em>Haus</em><span class="icon"></span> </span></div>
    <div class="trg ltr"><span class="text">В <em>доме</em></span></div>
  </div>
</section>
</body></html>`

func TestClient_LookupWord(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		handler    func(t *testing.T, w http.ResponseWriter, r *http.Request)
		want       WordResult
		wantErr    bool
		wantFetch  bool
		wantStatus int
	}{
		{
			name: "parses translations and examples",
			word: "Haus",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/translation/german-russian/Haus", r.URL.Path)
				assert.NotEmpty(t, r.Header.Get("User-Agent"))
				assert.Equal(t, "*/*", r.Header.Get("Accept"))
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				_, _ = w.Write([]byte(contextPageFixture))
			},
			want: WordResult{
				Translations: []Translation{
					{Word: "дом", PartOfSpeech: "Noun"},
					{Word: "здание", PartOfSpeech: ""},
				},
				Examples: []Example{
					{Original: "Das <em>Haus</em> ist alt.", Translation: "Этот <em>дом</em> старый."},
					{Original: "Im <em>Haus</em>", Translation: "В <em>доме</em>"},
				},
			},
		},
		{
			name: "page without entries degrades to empty lists",
			word: "xyz",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html><body><p>nothing</p></body></html>`))
			},
			want: WordResult{},
		},
		{
			name: "server error is a fetch error",
			word: "Haus",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:    true,
			wantFetch:  true,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "forbidden is a fetch error",
			word: "Haus",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantErr:    true,
			wantFetch:  true,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.handler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(Config{ContextBaseURL: server.URL})
			defer client.Close()

			got, err := client.LookupWord(context.Background(), tt.word, German, Russian)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantFetch {
					var fetchErr *FetchError
					require.True(t, errors.As(err, &fetchErr))
					assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_LookupWord_EmptyWord(t *testing.T) {
	client := NewClient(Config{ContextBaseURL: "http://127.0.0.1:0"})
	defer client.Close()

	_, err := client.LookupWord(context.Background(), "   ", German, Russian)
	assert.Error(t, err)
}

func TestClient_LookupWord_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(Config{ContextBaseURL: url})
	defer client.Close()

	_, err := client.LookupWord(context.Background(), "Haus", German, Russian)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Error(t, fetchErr.Err)
}

func TestParseWordPage(t *testing.T) {
	tests := []struct {
		name string
		html string
		want WordResult
	}{
		{
			name: "nested emphasis keeps only the highlighted text",
			html: `<div class="example"><div class="src"><span class="text">a <em>b</em> c</span></div><div class="trg"><span class="text"><a class="link_highlighted"><em>x</em></a></span></div></div>`,
			want: WordResult{
				Examples: []Example{{Original: "a <em>b</em> c", Translation: "<em>x</em>"}},
			},
		},
		{
			name: "link without emphasis is skipped",
			html: `<div class="example"><div class="src"><span class="text">one <a class="link_highlighted">two</a></span></div><div class="trg"><span class="text">eins</span></div></div>`,
			want: WordResult{
				Examples: []Example{{Original: "one", Translation: "eins"}},
			},
		},
		{
			name: "blank headword is dropped",
			html: `<a class="translation"><span class="display-term">   </span></a>`,
			want: WordResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWordPage(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
