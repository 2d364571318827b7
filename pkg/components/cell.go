package components

// CellComponent 网格单元坐标
// 创建后不再修改，Col ∈ [0, COLS)，Row ∈ [0, ROWS)
type CellComponent struct {
	Col int
	Row int
}
