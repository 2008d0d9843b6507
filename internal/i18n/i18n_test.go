package i18n

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestNewTranslations(t *testing.T) {
	t.Run("Should load the embedded locales without a directory", func(t *testing.T) {
		// act
		trans, err := NewTranslations("en", "")

		// assert
		if err != nil {
			t.Fatalf("NewTranslations() returned error: %v", err)
		}
		if got := trans.GetMessage("report.current_spi", 0, nil); got != "Current SPI" {
			t.Errorf("GetMessage() = %q, want %q", got, "Current SPI")
		}
	})

	t.Run("Should fail with empty language", func(t *testing.T) {
		// act
		trans, err := NewTranslations("", t.TempDir())

		// assert
		if err == nil {
			t.Error("NewTranslations() should fail with an empty language")
		}
		if trans != nil {
			t.Error("NewTranslations() should return nil when it fails")
		}
	})

	t.Run("Should let files in the directory override embedded messages", func(t *testing.T) {
		// arrange
		tmpDir := t.TempDir()
		createTestFile(t, tmpDir, "active.en.toml", `
[report]
current_spi = "SPI (this term)"
`)

		// act
		trans, err := NewTranslations("en", tmpDir)
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// assert
		if got := trans.GetMessage("report.current_spi", 0, nil); got != "SPI (this term)" {
			t.Errorf("GetMessage() = %q, want override", got)
		}
	})

	t.Run("Should fail on a broken locale file", func(t *testing.T) {
		// arrange
		tmpDir := t.TempDir()
		createTestFile(t, tmpDir, "active.en.toml", `[broken`)

		// act
		_, err := NewTranslations("en", tmpDir)

		// assert
		if err == nil {
			t.Error("NewTranslations() should fail on invalid TOML")
		}
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("Should switch to an embedded language", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("en", "")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		err = trans.SetLanguage("es")

		// assert
		if err != nil {
			t.Errorf("SetLanguage() returned error: %v", err)
		}
		if got := trans.GetMessage("report.current_spi", 0, nil); got != "SPI actual" {
			t.Errorf("GetMessage() = %q, want %q", got, "SPI actual")
		}
	})

	t.Run("Should fail with unsupported language", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("es", "")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		err = trans.SetLanguage("fr")

		// assert
		if err == nil {
			t.Error("SetLanguage() should fail for an unsupported language")
		}
	})
}

func TestGetMessage(t *testing.T) {
	trans, err := NewTranslations("en", "")
	if err != nil {
		t.Fatal("test setup failed:", err)
	}

	tests := []struct {
		name  string
		id    string
		count int
		data  map[string]interface{}
		want  string
	}{
		{
			name:  "singular",
			id:    "report.course_count",
			count: 1,
			data:  map[string]interface{}{"Count": 1},
			want:  "1 course",
		},
		{
			name:  "plural",
			id:    "report.course_count",
			count: 6,
			data:  map[string]interface{}{"Count": 6},
			want:  "6 courses",
		},
		{
			name: "template",
			id:   "report.title",
			data: map[string]interface{}{"Branch": "CSE", "Semester": "3"},
			want: "Courses for CSE - Semester 3",
		},
		{
			name: "missing message",
			id:   "NonExistent",
			want: "Translation missing: NonExistent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			got := trans.GetMessage(tt.id, tt.count, tt.data)

			// assert
			if got != tt.want {
				t.Errorf("GetMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalesHaveTheSameMessages(t *testing.T) {
	en := messageIDs(t, "locales/active.en.toml")
	es := messageIDs(t, "locales/active.es.toml")

	for _, id := range en {
		if !slices.Contains(es, id) {
			t.Errorf("active.es.toml is missing %q", id)
		}
	}
	for _, id := range es {
		if !slices.Contains(en, id) {
			t.Errorf("active.en.toml is missing %q", id)
		}
	}
}

func messageIDs(t *testing.T, path string) []string {
	t.Helper()

	data, err := embeddedLocales.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	var ids []string
	var walk func(prefix string, node map[string]interface{})
	walk = func(prefix string, node map[string]interface{}) {
		for k, v := range node {
			id := k
			if prefix != "" {
				id = prefix + "." + k
			}
			switch v := v.(type) {
			case map[string]interface{}:
				if _, plural := v["other"]; plural {
					ids = append(ids, id)
					continue
				}
				walk(id, v)
			default:
				ids = append(ids, id)
			}
		}
	}
	walk("", doc)
	slices.Sort(ids)
	return ids
}

func createTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
