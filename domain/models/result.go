package models

import "github.com/cloudcopper/fixturegen/lib/types"

// Result describes generated file
type Result struct {
	FileName string
	Seed     uint64
	Lines    int
	Empty    int
	Long     int
	Words    int64
	Bytes    int64
	Size     types.Size
}
