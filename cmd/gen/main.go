// Command gen regenerates the typed gorm query helpers for the persistence models.
package main

import (
	"todoez/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.MembershipModel{},
		model.TeamModel{},
		model.ProjectModel{},
		model.SprintModel{},
		model.TaskModel{},
		model.CommentModel{},
		model.NoteModel{},
		model.UserDeviceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
