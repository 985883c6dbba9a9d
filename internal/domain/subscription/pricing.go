package subscription

// PriceTable maps a gross amount in minor units to the tier it buys.
type PriceTable map[int64]Tier

// CatalogEntry describes one purchasable plan in the extended pricing
// catalog. The catalog is the fallback lookup when the primary price
// table has no exact match (e.g. a promo price that never made it into
// the short table).
type CatalogEntry struct {
	AmountInCents int64
	Tier          Tier
	Description   string
}

// DefaultPriceTable returns the primary amount-to-tier table (IDR).
func DefaultPriceTable() PriceTable {
	return PriceTable{
		idr(75000):  TierStarter,
		idr(199000): TierPro,
		idr(499000): TierElite,
	}
}

// DefaultPricingCatalog returns the extended catalog scanned when the
// primary table misses.
func DefaultPricingCatalog() []CatalogEntry {
	return []CatalogEntry{
		{AmountInCents: idr(75000), Tier: TierStarter, Description: "Starter - 2 mirror paths, Telegram only"},
		{AmountInCents: idr(199000), Tier: TierPro, Description: "Pro - 5 mirror paths, Discord sources"},
		{AmountInCents: idr(499000), Tier: TierElite, Description: "Elite - unlimited mirror paths"},
		{AmountInCents: idr(59000), Tier: TierStarter, Description: "Starter - launch promo"},
	}
}

// TierResolver resolves a paid gross amount to the purchased tier.
// Matching is exact in minor units; there is no fuzzy or nearest-price
// matching.
type TierResolver struct {
	table   PriceTable
	catalog []CatalogEntry
}

// NewTierResolver creates a resolver over the given table and catalog.
func NewTierResolver(table PriceTable, catalog []CatalogEntry) *TierResolver {
	return &TierResolver{table: table, catalog: catalog}
}

// NewDefaultTierResolver creates a resolver over the production tables.
func NewDefaultTierResolver() *TierResolver {
	return NewTierResolver(DefaultPriceTable(), DefaultPricingCatalog())
}

// Resolve returns the tier purchased by the given amount in minor
// units, or ErrUnknownAmount when no entry matches exactly.
func (r *TierResolver) Resolve(amountInCents int64) (Tier, error) {
	if tier, ok := r.table[amountInCents]; ok {
		return tier, nil
	}
	for _, entry := range r.catalog {
		if entry.AmountInCents == amountInCents {
			return entry.Tier, nil
		}
	}
	return "", ErrUnknownAmount
}

func idr(major int64) int64 {
	return major * 100
}
