package foamdict

import (
	"fmt"
	"strconv"
)

// Dict is an ordered mapping from keyword to either a string value or a
// nested *Dict. Values are never type converted by the parser.
type Dict struct {
	keys   []string
	values map[string]interface{}
}

func NewDict() *Dict {
	return &Dict{values: make(map[string]interface{})}
}

func (d *Dict) set(key string, value interface{}) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Set stores a leaf value. A key that already exists keeps its position.
func (d *Dict) Set(key, value string) *Dict {
	d.set(key, value)
	return d
}

// SetDict stores a nested dictionary.
func (d *Dict) SetDict(key string, sub *Dict) *Dict {
	d.set(key, sub)
	return d
}

// Sub returns the nested dictionary under key, creating it when absent or
// when key currently holds a leaf.
func (d *Dict) Sub(key string) *Dict {
	if sub, ok := d.GetDict(key); ok {
		return sub
	}
	sub := NewDict()
	d.SetDict(key, sub)
	return sub
}

func (d *Dict) Get(key string) (value interface{}, ok bool) {
	value, ok = d.values[key]
	return
}

func (d *Dict) GetString(key string) (value string, ok bool) {
	var v interface{}
	if v, ok = d.values[key]; !ok {
		return
	}
	value, ok = v.(string)
	return
}

func (d *Dict) GetDict(key string) (sub *Dict, ok bool) {
	var v interface{}
	if v, ok = d.values[key]; !ok {
		return
	}
	sub, ok = v.(*Dict)
	return
}

// GetFloat parses the leaf under key as a float.
func (d *Dict) GetFloat(key string) (f float64, err error) {
	s, ok := d.GetString(key)
	if !ok {
		return 0, fmt.Errorf("%w: no scalar entry %q", ErrMissingKey, key)
	}
	if f, err = strconv.ParseFloat(s, 64); err != nil {
		return 0, fmt.Errorf("entry %q: %w", key, err)
	}
	return
}

// Lookup walks nested dictionaries along path.
func (d *Dict) Lookup(path ...string) (value interface{}, ok bool) {
	var cur = d
	for i, key := range path {
		if value, ok = cur.values[key]; !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return
		}
		if cur, ok = value.(*Dict); !ok {
			return nil, false
		}
	}
	return cur, true
}

func (d *Dict) Delete(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

func (d *Dict) Len() int { return len(d.keys) }

// Clone is a deep copy.
func (d *Dict) Clone() *Dict {
	c := NewDict()
	for _, k := range d.keys {
		switch v := d.values[k].(type) {
		case *Dict:
			c.set(k, v.Clone())
		default:
			c.set(k, v)
		}
	}
	return c
}

// Merge overlays other onto d, recursing into dictionaries present in both.
func (d *Dict) Merge(other *Dict) *Dict {
	for _, k := range other.keys {
		ov := other.values[k]
		if osub, ok := ov.(*Dict); ok {
			if sub, ok := d.GetDict(k); ok {
				sub.Merge(osub)
				continue
			}
			d.set(k, osub.Clone())
			continue
		}
		d.set(k, ov)
	}
	return d
}

// Equal compares keys, order and values recursively.
func (d *Dict) Equal(other *Dict) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k {
			return false
		}
		switch v := d.values[k].(type) {
		case *Dict:
			ov, ok := other.values[k].(*Dict)
			if !ok || !v.Equal(ov) {
				return false
			}
		case string:
			ov, ok := other.values[k].(string)
			if !ok || ov != v {
				return false
			}
		}
	}
	return true
}

// ToMap converts to plain maps for YAML or JSON export. Ordering is lost.
func (d *Dict) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, len(d.keys))
	for _, k := range d.keys {
		switch v := d.values[k].(type) {
		case *Dict:
			m[k] = v.ToMap()
		default:
			m[k] = v
		}
	}
	return m
}
