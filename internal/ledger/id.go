package ledger

import (
	"fmt"
	"strings"
)

const (
	accountSeparator    = "@"
	definitionSeparator = "#"
)

// DomainID is the name of a domain, e.g. `wonderland`
type DomainID string

func ParseDomainID(s string) (DomainID, error) {
	if err := validateName(s); err != nil {
		return "", fmt.Errorf("invalid domain id %q: %w", s, err)
	}
	return DomainID(s), nil
}

func (id DomainID) String() string {
	return string(id)
}

// AccountID has the form `alice@wonderland`
type AccountID struct {
	Name   string
	Domain DomainID
}

func ParseAccountID(s string) (AccountID, error) {
	name, domain, ok := strings.Cut(s, accountSeparator)
	if !ok {
		return AccountID{}, fmt.Errorf("invalid account id %q: expected format `alice@wonderland`", s)
	}
	if err := validateName(name); err != nil {
		return AccountID{}, fmt.Errorf("invalid account id %q: %w", s, err)
	}
	d, err := ParseDomainID(domain)
	if err != nil {
		return AccountID{}, fmt.Errorf("invalid account id %q: %w", s, err)
	}
	return AccountID{Name: name, Domain: d}, nil
}

func (id AccountID) String() string {
	return id.Name + accountSeparator + string(id.Domain)
}

func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *AccountID) UnmarshalText(b []byte) error {
	parsed, err := ParseAccountID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AssetDefinitionID has the form `rose#wonderland`
type AssetDefinitionID struct {
	Name   string
	Domain DomainID
}

func ParseAssetDefinitionID(s string) (AssetDefinitionID, error) {
	name, domain, ok := strings.Cut(s, definitionSeparator)
	if !ok {
		return AssetDefinitionID{}, fmt.Errorf("invalid asset definition id %q: expected format `rose#wonderland`", s)
	}
	if err := validateName(name); err != nil {
		return AssetDefinitionID{}, fmt.Errorf("invalid asset definition id %q: %w", s, err)
	}
	d, err := ParseDomainID(domain)
	if err != nil {
		return AssetDefinitionID{}, fmt.Errorf("invalid asset definition id %q: %w", s, err)
	}
	return AssetDefinitionID{Name: name, Domain: d}, nil
}

func (id AssetDefinitionID) String() string {
	return id.Name + definitionSeparator + string(id.Domain)
}

func (id AssetDefinitionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *AssetDefinitionID) UnmarshalText(b []byte) error {
	parsed, err := ParseAssetDefinitionID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AssetID identifies the balance of one asset definition held by one account
type AssetID struct {
	DefinitionID AssetDefinitionID `json:"definition_id"`
	AccountID    AccountID         `json:"account_id"`
}

// String renders the storage key, e.g. `rose#wonderland#alice@wonderland`
func (id AssetID) String() string {
	return id.DefinitionID.String() + definitionSeparator + id.AccountID.String()
}

// PeerID is the network address and public key of a peer
type PeerID struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key"`
}

func validateName(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("name is empty")
	case strings.ContainsAny(s, accountSeparator+definitionSeparator):
		return fmt.Errorf("name %q contains a reserved character", s)
	case strings.ContainsFunc(s, isSpace):
		return fmt.Errorf("name %q contains whitespace", s)
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
