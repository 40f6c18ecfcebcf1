package logger

const SessionStartMsg = "遊戲開始 session: %s, tick interval: %s, headless: %t"
const SessionEndMsg = "遊戲結束 ticks: %d, score %d : %d"

const PauseToggledMsg = "暫停切換 paused: %t (tick %d)"

const PlayerScoredMsg = "%s 玩家得分！ Score: %d - %d"

const WallBounceMsg = "球撞到上下牆壁反彈 (tick %d)"
const PaddleBounceMsg = "球碰到球拍反彈 (tick %d)"

const SnapshotMsg = "畫面快照 tick %d: %s"

const ScreenInitFailedMsg = "畫面初始化失敗: %w"
