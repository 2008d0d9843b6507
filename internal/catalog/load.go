package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/spicalc/internal/errors"
	"github.com/thomas-vilte/spicalc/internal/grading"
	"github.com/thomas-vilte/spicalc/internal/models"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/courses.json
var embeddedCatalog []byte

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return parse(embeddedCatalog, FormatJSON, SourceEmbedded)
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.ErrCatalogFormat.WithContext("path", path)
	}
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrCatalogRead.WithError(err).WithContext("path", path)
	}

	cat, err := parse(data, format, path)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Parse decodes a catalog document held in memory.
func Parse(data []byte, format Format) (*Catalog, error) {
	return parse(data, format, "")
}

func parse(data []byte, format Format, source string) (*Catalog, error) {
	var (
		cat *Catalog
		err error
	)

	switch format {
	case FormatJSON, "":
		cat, err = parseJSON(data, source)
	case FormatYAML:
		cat, err = parseYAML(data, source)
	default:
		return nil, errors.ErrCatalogFormat.WithContext("format", string(format))
	}

	if err != nil {
		return nil, errors.ErrCatalogParse.WithError(err).WithContext("path", source)
	}
	return cat, nil
}

func parseJSON(data []byte, source string) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON document")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("top level must be an object of branches")
	}

	b := newBuilder(source)
	root.ForEach(func(branchKey, semesters gjson.Result) bool {
		bi := b.branch(branchKey.String())
		if !semesters.IsObject() {
			return true
		}
		semesters.ForEach(func(semesterKey, list gjson.Result) bool {
			b.semester(bi, semesterKey.String(), jsonCourses(list))
			return true
		})
		return true
	})

	return b.build(), nil
}

func jsonCourses(list gjson.Result) []models.Course {
	courses := make([]models.Course, 0)
	if !list.IsArray() {
		return courses
	}
	list.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		courses = append(courses, models.Course{
			Code:    item.Get("code").String(),
			Name:    item.Get("name").String(),
			Credits: credits(item.Get("credits").String()),
		})
		return true
	})
	return courses
}

func parseYAML(data []byte, source string) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	b := newBuilder(source)
	if len(doc.Content) == 0 {
		return b.build(), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping of branches")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		bi := b.branch(root.Content[i].Value)
		semesters := root.Content[i+1]
		if semesters.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(semesters.Content); j += 2 {
			b.semester(bi, semesters.Content[j].Value, yamlCourses(semesters.Content[j+1]))
		}
	}

	return b.build(), nil
}

func yamlCourses(list *yaml.Node) []models.Course {
	courses := make([]models.Course, 0)
	if list.Kind != yaml.SequenceNode {
		return courses
	}
	for _, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		var c models.Course
		for k := 0; k+1 < len(item.Content); k += 2 {
			value := item.Content[k+1].Value
			switch item.Content[k].Value {
			case "code":
				c.Code = value
			case "name":
				c.Name = value
			case "credits":
				c.Credits = credits(value)
			}
		}
		courses = append(courses, c)
	}
	return courses
}

// credits reads a credit value leniently; anything unusable is 0.
func credits(raw string) float64 {
	v := grading.ParseLenient(raw)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
