/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
)

// rawRecord mirrors the on-disk shape of a Spectrum token.
type rawRecord struct {
	Schema            string             `json:"$schema"`
	UUID              string             `json:"uuid"`
	Private           bool               `json:"private"`
	Deprecated        bool               `json:"deprecated"`
	DeprecatedComment string             `json:"deprecated_comment"`
	Component         string             `json:"component"`
	Value             json.RawMessage    `json:"value"`
	Sets              map[string]*Record `json:"sets"`
}

// UnmarshalJSON decodes a Spectrum token, choosing the Value case from
// the presence of "sets" and the schema tag.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Schema = raw.Schema
	r.UUID = raw.UUID
	r.Private = raw.Private
	r.Deprecated = raw.Deprecated
	r.DeprecatedComment = raw.DeprecatedComment
	r.Component = raw.Component

	if raw.Sets != nil {
		value, err := decodeSets(raw.Schema, raw.Sets)
		if err != nil {
			return err
		}
		r.Value = value
		return nil
	}

	var v any
	if len(raw.Value) > 0 {
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return fmt.Errorf("failed to decode value: %w", err)
		}
	}
	r.Value = Plain{Raw: v}
	return nil
}

func decodeSets(schemaURL string, sets map[string]*Record) (Value, error) {
	scale := SchemaType(schemaURL) == "scale-set"
	for key := range sets {
		if Variant(key).IsScale() {
			scale = true
			break
		}
	}

	if scale {
		var s ScaleSet
		for key, rec := range sets {
			switch Variant(key) {
			case Desktop:
				s.Desktop = rec
			case Mobile:
				s.Mobile = rec
			default:
				return nil, fmt.Errorf("%w: %q in scale set", ErrUnknownVariant, key)
			}
		}
		return s, nil
	}

	var s ColorSet
	for key, rec := range sets {
		switch Variant(key) {
		case Light:
			s.Light = rec
		case Dark:
			s.Dark = rec
		case Darkest:
			s.Darkest = rec
		case Wireframe:
			s.Wireframe = rec
		default:
			return nil, fmt.Errorf("%w: %q in color set", ErrUnknownVariant, key)
		}
	}
	return s, nil
}
