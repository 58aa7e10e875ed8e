package entity

// Sprite keys understood by the renderer.
const (
	SpritePlayerIdle    = "player_idle"
	SpritePlayerWalk    = "player_walk"
	SpritePlayerJump    = "player_jump"
	SpriteEnemy         = "bee"
	SpriteEnemyAttack   = "bee_attack"
	SpriteProjectile    = "stinger"
	SpritePickup        = "essence"
	SpritePlatform      = "platform"
	SpriteExit          = "puzzle_block"
	SpriteExitActivated = "puzzle_block_active"
)
