package setup

import (
	"github.com/The127/ioc"
	"github.com/The127/mediatr"
	"github.com/the127/attestate/internal/commands"
	"github.com/the127/attestate/internal/queries"
)

func Mediator(dc *ioc.DependencyCollection) {
	mediator := mediatr.NewMediator()

	mediatr.RegisterHandler(mediator, commands.HandleImportClass)
	mediatr.RegisterHandler(mediator, commands.HandleExportClass)
	mediatr.RegisterHandler(mediator, commands.HandleSaveChanges)

	mediatr.RegisterHandler(mediator, queries.HandleValidateClass)
	mediatr.RegisterHandler(mediator, queries.HandleGetSubjectsPlan)
	mediatr.RegisterHandler(mediator, queries.HandleListClasses)

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) mediatr.Mediator {
		return mediator
	})
}
