package memstore

import "errors"

// ErrNonSequentialID when inserting a campaign with an id not allocated by NextCampaignID
var ErrNonSequentialID = errors.New("memstore: non sequential campaign id")
