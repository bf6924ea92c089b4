package config

// 布局配置常量
// 本文件定义竞技场与窗口尺寸。竞技场尺寸在构造模拟时固定，不从配置文件读取。

// Arena Configuration (竞技场配置)
// 坐标原点为左上角，Y 轴向下
const (
	// ArenaWidth 竞技场宽度（像素）
	ArenaWidth = 480.0

	// ArenaHeight 竞技场高度（像素）
	ArenaHeight = 600.0
)

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度，与竞技场一致
	GameWindowWidth = int(ArenaWidth)

	// GameWindowHeight 逻辑屏幕高度，与竞技场一致
	GameWindowHeight = int(ArenaHeight)

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Sky Raid"

	// TicksPerSecond 模拟频率（每秒 tick 数）
	TicksPerSecond = 60
)

// HUD Configuration (界面配置)
const (
	// ScoreTextX, ScoreTextY 分数文本位置
	ScoreTextX = 10.0
	ScoreTextY = 14.0

	// LifeIconStartX 第一个生命图标的X坐标，之后每个图标右移 LifeIconSpacing
	LifeIconStartX  = 390.0
	LifeIconY       = 15.0
	LifeIconSize    = 20.0
	LifeIconSpacing = 30.0

	// BossHealthPipY Boss 血量指示条的Y坐标
	BossHealthPipY      = 44.0
	BossHealthPipWidth  = 14.0
	BossHealthPipHeight = 6.0
	BossHealthPipGap    = 4.0
)
