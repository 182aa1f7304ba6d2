package web

import (
	"strings"
	"testing"
)

func readAppJS(t *testing.T) string {
	t.Helper()
	src, err := staticFS.ReadFile("static/app.js")
	if err != nil {
		t.Fatalf("failed to read app.js: %v", err)
	}
	return string(src)
}

// block returns the source from start up to the first line that closes it
func block(t *testing.T, src, start, end string) string {
	t.Helper()
	i := strings.Index(src, start)
	if i < 0 {
		t.Fatalf("app.js has no %q", start)
	}
	j := strings.Index(src[i:], end)
	if j < 0 {
		t.Fatalf("app.js block %q is not closed by %q", start, end)
	}
	return src[i : i+j]
}

// assertInOrder fails unless every fragment appears in body after the previous one
func assertInOrder(t *testing.T, body string, fragments ...string) {
	t.Helper()
	pos := 0
	for _, f := range fragments {
		i := strings.Index(body[pos:], f)
		if i < 0 {
			t.Errorf("expected %q after offset %d", f, pos)
			return
		}
		pos += i + len(f)
	}
}

func TestAppJS_StaleResponsesAreDropped(t *testing.T) {
	src := readAppJS(t)

	tests := []struct {
		name      string
		start     string
		fragments []string
	}{
		{
			name:  "selector load",
			start: "async function load(",
			fragments: []string{
				"const generation = ++selector.generation;",
				"await request();",
				"if (generation !== selector.generation) {",
				"return;",
				"setState(selector, State.POPULATED",
			},
		},
		{
			name:  "weather query",
			start: "async function queryWeather(",
			fragments: []string{
				"const generation = ++weatherPanel.generation;",
				"await fetchJSON('/get_weather'",
				"if (generation !== weatherPanel.generation) {",
				"return;",
				"renderForecast(",
			},
		},
		{
			name:      "reset invalidates in-flight loads",
			start:     "function reset(",
			fragments: []string{"selector.generation++;", "setState(selector, State.EMPTY);"},
		},
		{
			name:      "cancel invalidates in-flight weather",
			start:     "function cancelWeather(",
			fragments: []string{"weatherPanel.generation++;", "hideWeather();"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertInOrder(t, block(t, src, tt.start, "\n}\n"), tt.fragments...)
		})
	}
}

func TestAppJS_ClearingParentResetsChildren(t *testing.T) {
	src := readAppJS(t)

	community := block(t, src, "selectors.comunidad.el.addEventListener('change'", "\n    });\n")
	assertInOrder(t, community,
		"reset(selectors.municipio);",
		"cancelWeather();",
		"if (this.value === '') {",
		"reset(selectors.provincia);",
		"return;",
		"loadProvinces(this.value);",
	)

	province := block(t, src, "selectors.provincia.el.addEventListener('change'", "\n    });\n")
	assertInOrder(t, province,
		"cancelWeather();",
		"if (this.value === '') {",
		"reset(selectors.municipio);",
		"return;",
		"loadMunicipalities(this.value);",
	)
}

func TestAppJS_MunicipalitySelectionQueriesWeather(t *testing.T) {
	src := readAppJS(t)

	municipality := block(t, src, "selectors.municipio.el.addEventListener('change'", "\n    });\n")
	assertInOrder(t, municipality,
		"if (this.value === '') {",
		"cancelWeather();",
		"queryWeather(this.value, selectedLabel(this));",
	)

	options := block(t, src, "function loadMunicipalities(", "\n}\n")
	assertInOrder(t, options, "fetchJSON('/get_municipios', { provincia_code: provinceCode })", "value: m.geo_point")
}
