package admin

import (
	"fmt"
	"math"

	"tirona-thrift/internal/product"
)

const (
	FieldName        = "name"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldSize        = "size"
	FieldImages      = "images"
	FieldTags        = "tags"
)

// Draft is the uncommitted edit of one product. Only touched fields are
// applied over the canonical record on save.
type Draft struct {
	values  product.Product
	touched map[string]bool
}

func newDraft(p product.Product) *Draft {
	return &Draft{values: p.Clone(), touched: map[string]bool{}}
}

func (d *Draft) ID() string {
	return d.values.ID
}

func (d *Draft) set(field string, value any) error {
	v := &d.values
	switch field {
	case FieldName, FieldCategory, FieldDescription, FieldSize:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants a string, got %T", ErrFieldType, field, value)
		}
		switch field {
		case FieldName:
			v.Name = s
		case FieldCategory:
			v.Category = s
		case FieldDescription:
			v.Description = s
		case FieldSize:
			v.Size = s
		}
	case FieldPrice:
		price, ok := asPrice(value)
		if !ok {
			return fmt.Errorf("%w: %s wants a whole number, got %v", ErrFieldType, field, value)
		}
		v.Price = price
	case FieldImages, FieldTags:
		list, ok := value.([]string)
		if !ok {
			return fmt.Errorf("%w: %s wants []string, got %T", ErrFieldType, field, value)
		}
		list = append([]string(nil), list...)
		if field == FieldImages {
			v.Images = list
		} else {
			v.Tags = list
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	d.touched[field] = true
	return nil
}

func asPrice(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// over merges the touched fields onto canonical. Untouched fields keep the
// canonical values.
func (d *Draft) over(canonical product.Product) product.Product {
	merged := canonical.Clone()
	for field := range d.touched {
		switch field {
		case FieldName:
			merged.Name = d.values.Name
		case FieldPrice:
			merged.Price = d.values.Price
		case FieldCategory:
			merged.Category = d.values.Category
		case FieldDescription:
			merged.Description = d.values.Description
		case FieldSize:
			merged.Size = d.values.Size
		case FieldImages:
			merged.Images = append([]string(nil), d.values.Images...)
		case FieldTags:
			merged.Tags = append([]string(nil), d.values.Tags...)
		}
	}
	return merged
}
