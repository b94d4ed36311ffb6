package testutil

import "time"

// WithStandardTestData adds the standard snapshot dataset: one SQL file with
// three revisions, a second SQL file with one, and a single-revision
// properties file.
func (b *Builder) WithStandardTestData() *Builder {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	return b.
		WithSnapshot("schema-r1",
			Path("/src/schema.sql"), Revision(1),
			Levels(0x2400, 0x401, 0x401, 0x400),
			CreatedAt(lastWeek), UpdatedAt(lastWeek)).
		WithSnapshot("schema-r2",
			Path("/src/schema.sql"), Revision(2),
			Levels(0x2400, 0x401, 0x2401, 0x402, 0x401, 0x400),
			CreatedAt(lastWeek), UpdatedAt(yesterday)).
		WithSnapshot("schema-r3",
			Path("/src/schema.sql"), Revision(3),
			Levels(0x2400, 0x401, 0x400),
			CreatedAt(yesterday), UpdatedAt(now)).
		WithSnapshot("queries-r1",
			Path("/src/queries.sql"), Revision(1),
			Levels(0x400, 0x2400, 0x401),
			CreatedAt(yesterday), UpdatedAt(yesterday)).
		WithSnapshot("settings-r1",
			Path("/etc/app.properties"), Revision(1),
			Levels(0x2400, 0x401, 0x1401),
			CreatedAt(now), UpdatedAt(now))
}

// WithDeepFoldTestData adds a single file whose levels walk several
// nesting depths, including whitespace and header flags.
//
// Structure:
//
//	header (depth 0)
//	  ├── body (depth 1)
//	  │     └── header (depth 1) → body (depth 2)
//	  └── blank line (white flag)
func (b *Builder) WithDeepFoldTestData() *Builder {
	return b.
		WithSnapshot("deep-r1",
			Path("/src/deep.sql"), Revision(1),
			Levels(0x2400, 0x401, 0x2401, 0x402, 0x402, 0x1401, 0x400))
}
