package query

import "github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"

// Query is a ledger request whose items decode into R
type Query[R any] struct {
	req ledger.Request
}

func (q Query[R]) Request() ledger.Request {
	return q.req
}

func FindAllAccounts() Query[ledger.Account] {
	return Query[ledger.Account]{req: ledger.Request{Kind: ledger.KindAccount}}
}

func FindAccountByID(id ledger.AccountID) Query[ledger.Account] {
	return Query[ledger.Account]{req: ledger.Request{Kind: ledger.KindAccount, ID: id.String()}}
}

func FindAllDomains() Query[ledger.Domain] {
	return Query[ledger.Domain]{req: ledger.Request{Kind: ledger.KindDomain}}
}

func FindDomainByID(id ledger.DomainID) Query[ledger.Domain] {
	return Query[ledger.Domain]{req: ledger.Request{Kind: ledger.KindDomain, ID: id.String()}}
}

func FindAllAssets() Query[ledger.Asset] {
	return Query[ledger.Asset]{req: ledger.Request{Kind: ledger.KindAsset}}
}

func FindAssetByID(id ledger.AssetID) Query[ledger.Asset] {
	return Query[ledger.Asset]{req: ledger.Request{Kind: ledger.KindAsset, ID: id.String()}}
}

func FindAllAssetDefinitions() Query[ledger.AssetDefinition] {
	return Query[ledger.AssetDefinition]{req: ledger.Request{Kind: ledger.KindAssetDefinition}}
}

func FindAssetDefinitionByID(id ledger.AssetDefinitionID) Query[ledger.AssetDefinition] {
	return Query[ledger.AssetDefinition]{req: ledger.Request{Kind: ledger.KindAssetDefinition, ID: id.String()}}
}

func FindAllRoles() Query[ledger.Role] {
	return Query[ledger.Role]{req: ledger.Request{Kind: ledger.KindRole}}
}

func FindAllPeers() Query[ledger.Peer] {
	return Query[ledger.Peer]{req: ledger.Request{Kind: ledger.KindPeer}}
}
