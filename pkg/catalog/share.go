// pkg/catalog/share.go
package catalog

import "strings"

// EncodeShare joins app ids into a share hash
func EncodeShare(ids []string) string {
	return strings.Join(ids, ",")
}

// DecodeShare splits a share hash into ids. A leading '#' is ignored and
// empty segments are dropped.
func DecodeShare(hash string) []string {
	hash = strings.TrimPrefix(strings.TrimSpace(hash), "#")

	var ids []string
	for _, id := range strings.Split(hash, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// DecodeShareKnown decodes hash and keeps only ids present in c
func (c *Catalog) DecodeShareKnown(hash string) []string {
	var ids []string
	for _, id := range DecodeShare(hash) {
		if _, ok := c.byID[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
