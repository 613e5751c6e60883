package contracts

type SheetRepository interface {
	SaveSheet(sheetId string, grid Grid) error
	GetSheet(sheetId string) (CellList, error)
	GetCell(sheetId string, cellId string) (*Cell, error)
	SetCell(sheetId string, cellId string, value string) (*Cell, error)
}
