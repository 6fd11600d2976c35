package store

// FavoriteSkuMap returns the SKU usage counters. Counters only ever grow;
// they rank the catalog picker and are never decremented or expired.
func (s *Store) FavoriteSkuMap() (map[string]int, error) {
	v, err := s.readSlot(KeyFavorites)
	if err != nil {
		return nil, err
	}
	return decodeFavorites(v), nil
}

// BumpFavoriteSku increments a SKU's counter by count (floored at 1). An
// empty SKU ID is a no-op.
func (s *Store) BumpFavoriteSku(skuID string, count int) error {
	if skuID == "" {
		return nil
	}
	favs, err := s.FavoriteSkuMap()
	if err != nil {
		return err
	}
	if count < 1 {
		count = 1
	}
	favs[skuID] += count
	return s.writeSlot(KeyFavorites, favs)
}
