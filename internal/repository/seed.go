package repository

import (
	"time"

	"github.com/usm-portal/event-portal-api/internal/models"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// SeedEvents returns the demo catalog the portal ships with. Dates are
// derived from the current moment so the date-bucket filters stay exercised.
func SeedEvents(now time.Time) []models.Event {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(dateLayout)
	}
	nextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 14)

	return []models.Event{
		{
			ID:               "evt-001",
			Title:            "Hackathon de Innovación Tecnológica",
			ShortDescription: "48 horas de desarrollo colaborativo con mentores de la industria.",
			Description:      "Una maratón de desarrollo donde equipos multidisciplinarios construyen soluciones a problemas reales de la región. Incluye talleres de preparación, mentorías y premios para los tres primeros lugares.",
			Organizer:        "Departamento de Informática",
			OrganizerEmail:   "informatica@usm.cl",
			Date:             day(2),
			Time:             "09:00 - 18:00",
			Location:         "Edificio de Innovación, Campus Central",
			Audience:         models.AudienceStudentsOnly,
			Cost:             0,
			Capacity:         intPtr(120),
			CurrentAttendees: intPtr(87),
			Status:           models.StatusUpcoming,
			ApprovalStatus:   models.ApprovalApproved,
			Category:         models.CategoryTecnologia,
			Tags:             []string{"hackathon", "programación", "innovación"},
			ApprovedBy:       "admin@usm.cl",
			ApprovedAt:       timePtr(now.AddDate(0, 0, -20)),
			LastUpdated:      now.AddDate(0, 0, -20),
		},
		{
			ID:               "evt-002",
			Title:            "Concierto de Primavera de la Orquesta Universitaria",
			ShortDescription: "La orquesta interpreta obras de compositores latinoamericanos.",
			Description:      "El tradicional concierto de temporada reúne a la orquesta y al coro universitario en un programa dedicado a compositores latinoamericanos del siglo XX. Abierto a toda la comunidad con entrada liberada.",
			Organizer:        "Dirección de Extensión Cultural",
			OrganizerEmail:   "cultura@usm.cl",
			Date:             day(12),
			Time:             "19:30 - 21:30",
			Location:         "Aula Magna",
			Audience:         models.AudienceOpen,
			Cost:             0,
			Capacity:         intPtr(400),
			CurrentAttendees: intPtr(215),
			Status:           models.StatusUpcoming,
			ApprovalStatus:   models.ApprovalApproved,
			Category:         models.CategoryCultura,
			Tags:             []string{"música", "orquesta", "primavera"},
			ApprovedBy:       "admin@usm.cl",
			ApprovedAt:       timePtr(now.AddDate(0, 0, -15)),
			LastUpdated:      now.AddDate(0, 0, -15),
		},
		{
			ID:               "evt-003",
			Title:            "Seminario de Gestión de Energías Renovables",
			ShortDescription: "Expertos del sector discuten la transición energética en Chile.",
			Description:      "Jornada de presentaciones y paneles sobre almacenamiento, hidrógeno verde y regulación del mercado eléctrico. Dirigido a académicos e investigadores; incluye certificado de asistencia y material de apoyo.",
			Organizer:        "Departamento de Ingeniería Eléctrica",
			OrganizerEmail:   "electrica@usm.cl",
			OrganizerPhone:   "+56 32 2654000",
			Date:             nextMonth.Format(dateLayout),
			Time:             "10:00 - 17:00",
			Location:         "Sala de Conferencias, Edificio T",
			Audience:         models.AudienceFacultyOnly,
			Cost:             15000,
			Capacity:         intPtr(80),
			CurrentAttendees: intPtr(32),
			Status:           models.StatusUpcoming,
			ApprovalStatus:   models.ApprovalApproved,
			Category:         models.CategorySeminarios,
			Tags:             []string{"energía", "sustentabilidad"},
			ApprovedBy:       "admin@usm.cl",
			ApprovedAt:       timePtr(now.AddDate(0, 0, -10)),
			LastUpdated:      now.AddDate(0, 0, -10),
		},
		{
			ID:               "evt-004",
			Title:            "Feria de Emprendimiento Estudiantil",
			ShortDescription: "Muestra anual de proyectos y startups nacidas en la universidad.",
			Description:      "Más de cuarenta stands de emprendimientos estudiantiles, rondas de pitch frente a inversionistas invitados y charlas sobre financiamiento temprano. La feria es abierta y no requiere inscripción previa.",
			Organizer:        "Incubadora USM",
			OrganizerEmail:   "incubadora@usm.cl",
			Date:             day(25),
			Time:             "11:00 - 19:00",
			Location:         "Patio Central, Campus Central",
			Audience:         models.AudienceUniversityOnly,
			Cost:             3000,
			Status:           models.StatusUpcoming,
			ApprovalStatus:   models.ApprovalApproved,
			Category:         models.CategoryEmprendimiento,
			Tags:             []string{"startups", "pitch", "networking"},
			ApprovedBy:       "admin@usm.cl",
			ApprovedAt:       timePtr(now.AddDate(0, 0, -8)),
			LastUpdated:      now.AddDate(0, 0, -8),
		},
		{
			ID:               "evt-005",
			Title:            "Taller de Escritura de Artículos Científicos",
			ShortDescription: "Metodología práctica para publicar en revistas indexadas.",
			Description:      "Taller intensivo de dos sesiones sobre estructura de papers, selección de revistas y respuesta a revisores. Los asistentes trabajan sobre un borrador propio con retroalimentación individual del relator.",
			Organizer:        "Dirección de Investigación",
			OrganizerEmail:   "investigacion@usm.cl",
			Date:             day(9),
			Time:             "15:00 - 18:00",
			Location:         "Biblioteca Central, Sala 2",
			Audience:         models.AudienceSpecificDepartment,
			AudienceDetails:  "Programas de postgrado",
			Cost:             0,
			Capacity:         intPtr(30),
			CurrentAttendees: intPtr(30),
			Status:           models.StatusUpcoming,
			ApprovalStatus:   models.ApprovalPending,
			Category:         models.CategoryTalleres,
			Tags:             []string{"investigación", "publicaciones"},
			ProposedBy:       "Carolina Reyes",
			ProposedAt:       timePtr(now.AddDate(0, 0, -3)),
			LastUpdated:      now.AddDate(0, 0, -3),
		},
		{
			ID:               "evt-006",
			Title:            "Campeonato Interfacultades de Fútbol",
			ShortDescription: "Torneo deportivo entre las distintas facultades.",
			Description:      "Competencia de fútbol en formato de grupos y eliminación directa entre equipos representativos de cada facultad. Las inscripciones se realizan por equipo y requieren un mínimo de once jugadores titulares.",
			Organizer:        "Dirección de Deportes",
			OrganizerEmail:   "deportes@usm.cl",
			Date:             day(18),
			Time:             "14:00 - 18:00",
			Location:         "Complejo Deportivo",
			Audience:         models.AudienceStudentsOnly,
			Cost:             5000,
			Status:           models.StatusUpcoming,
			ApprovalStatus:   models.ApprovalRejected,
			Category:         models.CategoryDeportes,
			RejectionReason:  "Las fechas propuestas chocan con el calendario de certámenes. Proponer para la semana siguiente al período de evaluaciones.",
			ProposedBy:       "Club Deportivo Estudiantil",
			ProposedAt:       timePtr(now.AddDate(0, 0, -6)),
			LastUpdated:      now.AddDate(0, 0, -4),
		},
		{
			ID:               "evt-007",
			Title:            "Exposición Fotográfica: Memoria del Campus",
			ShortDescription: "Archivo fotográfico histórico de la universidad.",
			Description:      "Selección de fotografías del archivo institucional que recorre la historia del campus desde su fundación. La muestra permanece abierta durante un mes en el hall de la biblioteca con visitas guiadas los viernes.",
			Organizer:        "Archivo Institucional",
			OrganizerEmail:   "archivo@usm.cl",
			Date:             day(30),
			Time:             "10:00 - 20:00",
			Location:         "Hall Biblioteca Central",
			Audience:         models.AudienceOpen,
			Cost:             0,
			Status:           models.StatusUpcoming,
			ApprovalStatus:   models.ApprovalNeedsChanges,
			Category:         models.CategoryExposiciones,
			AdminNotes:       "Falta indicar el aforo máximo del hall y el protocolo de visitas guiadas. Completar la información de contacto del responsable.",
			ProposedBy:       "Tomás Ibarra",
			ProposedAt:       timePtr(now.AddDate(0, 0, -9)),
			LastUpdated:      now.AddDate(0, 0, -5),
		},
	}
}

// SeedNotifications returns the initial ledger entries, newest first.
func SeedNotifications(now time.Time) []models.Notification {
	return []models.Notification{
		{
			ID:        "ntf-001",
			Type:      models.NotificationSuccess,
			Title:     "Evento aprobado",
			Message:   "El Hackathon de Innovación Tecnológica fue aprobado y ya es visible en el portal.",
			Timestamp: now.Add(-2 * time.Hour),
			EventID:   "evt-001",
		},
		{
			ID:        "ntf-002",
			Type:      models.NotificationWarning,
			Title:     "Cambios solicitados",
			Message:   "La Exposición Fotográfica requiere información adicional antes de su publicación.",
			Timestamp: now.Add(-26 * time.Hour),
			EventID:   "evt-007",
		},
		{
			ID:        "ntf-003",
			Type:      models.NotificationError,
			Title:     "Evento rechazado",
			Message:   "El Campeonato Interfacultades fue rechazado por conflicto de calendario.",
			Timestamp: now.Add(-48 * time.Hour),
			EventID:   "evt-006",
			Read:      true,
		},
		{
			ID:        "ntf-004",
			Type:      models.NotificationInfo,
			Title:     "Nueva propuesta recibida",
			Message:   "El Taller de Escritura de Artículos Científicos espera revisión.",
			Timestamp: now.Add(-72 * time.Hour),
			EventID:   "evt-005",
			Read:      true,
		},
	}
}
