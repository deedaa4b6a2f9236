package ledger

import "encoding/json"

// Metadata is a free-form key/value store attached to ledger entities
type Metadata map[string]any

type Account struct {
	ID       AccountID `json:"id"`
	Assets   []Asset   `json:"assets"`
	Metadata Metadata  `json:"metadata"`
	Roles    []string  `json:"roles"`
}

type Domain struct {
	ID               DomainID          `json:"id"`
	Accounts         []Account         `json:"accounts"`
	Logo             *string           `json:"logo"`
	Metadata         Metadata          `json:"metadata"`
	AssetDefinitions []AssetDefinition `json:"asset_definitions"`
}

// AssetValueType is the numeric or storage class of an asset
type AssetValueType string

const (
	ValueQuantity    AssetValueType = "Quantity"
	ValueBigQuantity AssetValueType = "BigQuantity"
	ValueFixed       AssetValueType = "Fixed"
	ValueStore       AssetValueType = "Store"
)

// AssetValue keeps the stored value undecoded; its shape depends on Type
type AssetValue struct {
	Type  AssetValueType  `json:"type"`
	Value json.RawMessage `json:"value"`
}

type Asset struct {
	ID    AssetID    `json:"id"`
	Value AssetValue `json:"value"`
}

type AssetDefinition struct {
	ID        AssetDefinitionID `json:"id"`
	ValueType AssetValueType    `json:"value_type"`
	Mintable  string            `json:"mintable"`
}

type PermissionToken struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

type Role struct {
	ID          string            `json:"id"`
	Permissions []PermissionToken `json:"permissions"`
}

type Peer struct {
	ID PeerID `json:"id"`
}
