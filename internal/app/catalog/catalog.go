package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"unicatalog/internal/app/ds"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

//go:embed data/universities.toml
var embeddedData []byte

var (
	ErrEmptyID     = errors.New("university id is empty")
	ErrDuplicateID = errors.New("duplicate university id")
)

// Catalog хранит неизменяемый список вузов.
// После загрузки только читается, поэтому безопасен для конкурентного чтения без блокировок.
type Catalog struct {
	universities []ds.University
	byID         map[string]int
	cities       []string
	types        []string
}

type document struct {
	University []ds.University `toml:"university"`
}

// Load читает встроенный каталог.
func Load() (*Catalog, error) {
	return Parse(embeddedData)
}

// LoadFile читает каталог из внешнего TOML-файла той же схемы.
// Пустой путь означает встроенный каталог.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Load()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse разбирает TOML-документ с таблицами [[university]].
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return New(doc.University)
}

// New строит каталог из готовых записей, порядок записей сохраняется.
func New(universities []ds.University) (*Catalog, error) {
	c := &Catalog{
		universities: slices.Clone(universities),
		byID:         make(map[string]int, len(universities)),
	}

	seenCity := make(map[string]bool)
	seenType := make(map[string]bool)

	for i, u := range c.universities {
		if u.ID == "" {
			return nil, fmt.Errorf("record #%d: %w", i, ErrEmptyID)
		}
		if _, ok := c.byID[u.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, u.ID)
		}
		c.byID[u.ID] = i

		if !seenCity[u.City] {
			seenCity[u.City] = true
			c.cities = append(c.cities, u.City)
		}
		if !seenType[u.Type] {
			seenType[u.Type] = true
			c.types = append(c.types, u.Type)
		}
	}

	logrus.Infof("catalog loaded: %d universities", len(c.universities))
	return c, nil
}

// All возвращает все записи в порядке определения.
// Срез новый, изменение его элементов каталог не затрагивает.
func (c *Catalog) All() []ds.University {
	return slices.Clone(c.universities)
}

// Get - точный поиск по id.
func (c *Catalog) Get(id string) (ds.University, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ds.University{}, false
	}
	return c.universities[i], true
}

// Len возвращает количество записей.
func (c *Catalog) Len() int {
	return len(c.universities)
}

// Cities - города в порядке первого появления.
func (c *Catalog) Cities() []string {
	return slices.Clone(c.cities)
}

// Types - типы вузов в порядке первого появления.
func (c *Catalog) Types() []string {
	return slices.Clone(c.types)
}

// Each обходит записи в порядке каталога без копирования среза.
func (c *Catalog) Each(fn func(u ds.University) bool) {
	for _, u := range c.universities {
		if !fn(u) {
			return
		}
	}
}
