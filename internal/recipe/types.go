package recipe

// ListFilter 菜谱列表过滤条件
type ListFilter struct {
	// 按作者过滤，0 表示不过滤
	AuthorID uint
	// 当前请求用户，用于收藏/购物车过滤，0 表示未登录
	ViewerID uint
	// 只看已收藏/未收藏，nil 表示不过滤
	IsFavorited *bool
	// 只看购物车内/外，nil 表示不过滤
	IsInShoppingCart *bool
}

// CartIngredient 购物清单聚合行：同名同单位的食材用量合计
type CartIngredient struct {
	Name            string
	MeasurementUnit string
	TotalAmount     int
}

// CartRecipe 购物清单中的菜谱及其作者
type CartRecipe struct {
	Name           string
	AuthorUsername string
}
