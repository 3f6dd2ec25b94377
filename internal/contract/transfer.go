package contract

import "github.com/alexanderramin/quadro/internal/app"

const SnapshotVersion = app.SnapshotVersion

type Snapshot = app.Snapshot

type SnapshotProfile = app.SnapshotProfile

type SnapshotProject = app.SnapshotProject

type SnapshotTask = app.SnapshotTask

type TransferResult = app.TransferResult
