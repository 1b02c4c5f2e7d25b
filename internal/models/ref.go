package models

import (
	"bytes"
	"encoding/json"
)

// The upstream API serializes references in three shapes: null, a bare
// id string, or a populated object. The types in this file normalize
// all three at the decoding boundary so that the reconciliation logic
// never has to probe for shape again.

// isNull reports whether the raw JSON value is null or empty.
func isNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || string(data) == "null"
}

// isString reports whether the raw JSON value is a bare string.
func isString(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '"'
}

// BranchRef is a reference to a branch. When populated, it carries the
// branch summary the upstream embeds on some transactions.
type BranchRef struct {
	ID        string
	Name      string
	Code      string
	Populated bool
}

// Present reports whether the reference identifies a branch at all,
// regardless of shape.
func (r BranchRef) Present() bool {
	return r.ID != ""
}

func (r *BranchRef) UnmarshalJSON(data []byte) error {
	*r = BranchRef{}
	if isNull(data) {
		return nil
	}
	if isString(data) {
		return json.Unmarshal(data, &r.ID)
	}

	var aux struct {
		ID   string `json:"_id"`
		Name string `json:"branchName"`
		Code string `json:"branchCode"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = BranchRef{ID: aux.ID, Name: aux.Name, Code: aux.Code, Populated: true}
	return nil
}

// CourierRef is a reference to a courier partner, embedded in orders.
type CourierRef struct {
	ID        string
	Name      string
	Populated bool
}

func (r CourierRef) Present() bool {
	return r.ID != ""
}

func (r *CourierRef) UnmarshalJSON(data []byte) error {
	*r = CourierRef{}
	if isNull(data) {
		return nil
	}
	if isString(data) {
		return json.Unmarshal(data, &r.ID)
	}

	var aux struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = CourierRef{ID: aux.ID, Name: aux.Name, Populated: true}
	return nil
}

// MaterialRef is a reference to a raw material. When populated, it
// carries the supplier fields used for fallback supplier matching.
type MaterialRef struct {
	ID           string
	Name         string
	SupplierID   string
	SupplierName string
	Populated    bool
}

func (r MaterialRef) Present() bool {
	return r.ID != ""
}

func (r *MaterialRef) UnmarshalJSON(data []byte) error {
	*r = MaterialRef{}
	if isNull(data) {
		return nil
	}
	if isString(data) {
		return json.Unmarshal(data, &r.ID)
	}

	var aux struct {
		ID           string `json:"_id"`
		Name         string `json:"materialName"`
		SupplierID   string `json:"supplierId"`
		SupplierName string `json:"supplierName"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = MaterialRef{
		ID:           aux.ID,
		Name:         aux.Name,
		SupplierID:   aux.SupplierID,
		SupplierName: aux.SupplierName,
		Populated:    true,
	}
	return nil
}

// OrderRef is a reference to an order. When populated, it carries the
// customer type and the order's courier partner reference.
type OrderRef struct {
	ID           string
	CustomerType string
	Courier      CourierRef
	Populated    bool
}

func (r OrderRef) Present() bool {
	return r.ID != ""
}

func (r *OrderRef) UnmarshalJSON(data []byte) error {
	*r = OrderRef{}
	if isNull(data) {
		return nil
	}
	if isString(data) {
		return json.Unmarshal(data, &r.ID)
	}

	var aux struct {
		ID           string     `json:"_id"`
		CustomerType string     `json:"customerType"`
		Courier      CourierRef `json:"courierPartnerId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = OrderRef{
		ID:           aux.ID,
		CustomerType: aux.CustomerType,
		Courier:      aux.Courier,
		Populated:    true,
	}
	return nil
}
