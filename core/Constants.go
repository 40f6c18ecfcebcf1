package core

import "time"

const FieldWidth = 1500 // 場地寬度
const FieldHeight = 700 // 場地高度

const PaddleWidth = 20                                // 球拍寬度
const PaddleHeight = 100                              // 球拍高度
const PaddleP1X = 10                                  // 左方球拍 x
const PaddleP2X = 1470                                // 右方球拍 x
const PaddleStartY = (FieldHeight - PaddleHeight) / 2 // 球拍起始 y
const PaddleStep = 3                                  // 每個 tick 移動距離

// PaddleCaptureMargin lets a ball grazing the paddle's top or bottom corner still bounce.
const PaddleCaptureMargin = 10

const BallRadius = 15
const BallStartX = FieldWidth / 2
const BallStartY = FieldHeight / 2
const BallStartDX = 4.5
const BallStartDY = 1.5

// BallResetSpeedMax bounds each velocity component drawn after a point, [0, BallResetSpeedMax).
const BallResetSpeedMax = 5

const BoardY = 50    // 分數板 y
const BoardP1X = 400 // 左方分數 x
const BoardP2X = 1000

const TickInterval = 20 * time.Millisecond
