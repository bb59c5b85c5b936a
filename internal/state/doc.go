// Package state keeps projects between saves.
//
// A Registry is the data host the save pipeline reads projects from and
// upserts them into. Every backend hands out one live *model.Project per id,
// so a preview and a save working on the same id share the instance.
//
// Key concepts:
//   - Registry: Project / AddProject / Projects, upsert by id
//   - Entry: the listing row of a project (id, name, path, draft, updated-at)
//   - MemoryRegistry: live instances only, for hosts that own persistence
//   - FileRegistry: one JSON document per project under the projects directory
//   - SQLiteRegistry: one row per project in a WAL-mode SQLite database
package state
