package app

import "github.com/alexanderramin/quadro/internal/importer"

const SnapshotVersion = importer.SnapshotVersion

type Snapshot = importer.Snapshot

type SnapshotProfile = importer.SnapshotProfile

type SnapshotProject = importer.SnapshotProject

type SnapshotTask = importer.SnapshotTask

// TransferResult reports what an export wrote or an import applied.
type TransferResult struct {
	Path     string
	Projects int
	Tasks    int
}
