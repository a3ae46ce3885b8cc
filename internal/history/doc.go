// Package history records property changes for SPIM Core.
//
// Every successful property set is persisted to SQLite so an acquisition
// session can be reconstructed afterwards: which rig role, which
// property, what value, when, and through which surface (api, mqtt,
// sim) the change arrived.
//
// # Key Types
//
//   - Entry: one recorded property change
//   - Repository: storage contract (SQLite implementation provided)
//   - Recorder: a property.ChangeObserver that writes entries, tagging
//     each with the change's origin surface
//   - Pruner: background retention sweep deleting aged entries
//
// # Usage
//
//	repo := history.NewSQLiteRepository(db.DB)
//	recorder := history.NewRecorder(repo, history.SourceAPI)
//	recorder.SetLogger(log)
//	accessor.AddObserver(recorder)
//
//	go history.NewPruner(repo, 90*24*time.Hour).Run(ctx)
//
//	entries, err := repo.GetByRole(ctx, "galvo_a", 50)
package history
