package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
	"github.com/osse101/HarvestCodex_Go/internal/utils"
	"github.com/osse101/HarvestCodex_Go/internal/validation"
)

// Catalog is the immutable item reference list. Safe for concurrent use.
type Catalog struct {
	items       []domain.Item
	byID        map[string]int
	keys        []searchKeys
	sharedNames map[string]struct{}
	raw         []byte
}

// Load reads the bundled catalog, validating it against the bundled schema
func Load(ctx context.Context) (*Catalog, error) {
	return LoadFS(ctx, DataFS, ItemsFile, ItemsSchemaFile)
}

// LoadFS reads a catalog file from source and validates it against schemaFile
func LoadFS(ctx context.Context, source fs.FS, itemsFile, schemaFile string) (*Catalog, error) {
	data, err := fs.ReadFile(source, itemsFile)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	if err := validation.NewSchemaValidator(source).ValidateBytes(data, schemaFile); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaValidationFailed, err)
	}

	var items []domain.Item
	if err := utils.DecodeStrict(data, &items); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	c, err := New(items)
	if err != nil {
		return nil, err
	}
	c.raw = data

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "items", len(c.items), "shared_names", len(c.sharedNames))
	return c, nil
}

// New builds a catalog from items, enforcing unique ids and valid enums
func New(items []domain.Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyCatalog)
	}

	c := &Catalog{
		items: make([]domain.Item, len(items)),
		byID:  make(map[string]int, len(items)),
		keys:  make([]searchKeys, len(items)),
	}
	copy(c.items, items)

	namesByGame := make(map[domain.Game]map[string]struct{}, len(domain.AllGames))
	for i, item := range c.items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: '%s'", domain.ErrDuplicateItemID, item.ID)
		}
		c.byID[item.ID] = i
		c.keys[i] = newSearchKeys(item.Name, item.NamePt, item.HytaleID)

		if namesByGame[item.Game] == nil {
			namesByGame[item.Game] = make(map[string]struct{})
		}
		namesByGame[item.Game][item.NormalizedName()] = struct{}{}
	}

	c.sharedNames = make(map[string]struct{})
	for name := range namesByGame[domain.GameStardew] {
		if _, ok := namesByGame[domain.GameHytale][name]; ok {
			c.sharedNames[name] = struct{}{}
		}
	}

	return c, nil
}

func validateItem(item domain.Item) error {
	if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item id and name are required", domain.ErrInvalidInput)
	}
	if !item.Game.IsValid() {
		return fmt.Errorf("%w: '%s' on item '%s'", domain.ErrInvalidGame, item.Game, item.ID)
	}
	if !item.Category.IsValid() {
		return fmt.Errorf("%w: '%s' on item '%s'", domain.ErrInvalidCategory, item.Category, item.ID)
	}
	if item.Value != nil && *item.Value < 0 {
		return fmt.Errorf("%w: item '%s'", domain.ErrInvalidItemValue, item.ID)
	}
	return nil
}

// Items returns a copy of every item in catalog order
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the item with the given id
func (c *Catalog) Get(id string) (domain.Item, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: '%s'", domain.ErrItemNotFound, id)
	}
	return c.items[idx], nil
}

// Contains reports whether id is a catalog item
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IsShared reports whether an item with the same name exists in both games
func (c *Catalog) IsShared(item domain.Item) bool {
	_, ok := c.sharedNames[item.NormalizedName()]
	return ok
}

// Raw returns the bytes the catalog was loaded from, or nil when built with New
func (c *Catalog) Raw() []byte {
	return c.raw
}
