package dataset

// Builtin returns the results of the "Inteligencia Emocional Aplicada (Nivel I)"
// workshop survey.
func Builtin() *Dataset {
	return New(builtinRecords())
}

func builtinRecords() Records {
	return Records{
		KPIs: KPIs{
			G1: CohortKPI{Enrolled: 16, Responses: 7, MeanGrade: 9.14},
			G2: CohortKPI{Enrolled: 12, Responses: 7, MeanGrade: 8.29},
		},
		// Likert means doubled to sit on the 0-10 radar axis.
		ModuleScores: []ModuleScore{
			{Subject: "Módulo 1", G1: 7.72, G2: 7.42, Full: "Módulo 1: Introducción a las emociones"},
			{Subject: "Módulo 2", G1: 7.72, G2: 7.72, Full: "Módulo 2: Emociones básicas"},
			{Subject: "Módulo 3", G1: 8.86, G2: 7.14, Full: "Módulo 3: Sentimientos y comunicación"},
			{Subject: "Módulo 4", G1: 9.14, G2: 8.86, Full: "Módulo 4: Reuniones y negociación"},
		},
		QuestionScores: []QuestionScore{
			{Question: "Q1. Utilidad", G1: 4.57, G2: 4.14, Full: "¿Cuán útil te ha resultado este taller?"},
			{Question: "Q2. Recomendación", G1: 4.57, G2: 4.14, Full: "¿Cuánto lo recomendarías?"},
			{Question: "Q7. Tareas", G1: 3.71, G2: 3.29, Full: "¿Cómo te has sentido al realizar las tareas?"},
		},
		Distribution: []DistributionBucket{
			{Grade: "1 a 6", G1: 0, G2: 0},
			{Grade: "Nota 7", G1: 0, G2: 2},
			{Grade: "Nota 8", G1: 1, G2: 2},
			{Grade: "Nota 9", G1: 4, G2: 2},
			{Grade: "Nota 10", G1: 2, G2: 1},
		},
		Segments: []SegmentCount{
			{Name: "Promotores (9-10)", Count: 9, Color: "#10B981"},
			{Name: "Neutros (7-8)", Count: 5, Color: "#F59E0B"},
			{Name: "Detractores (1-6)", Count: 0, Color: "#EF4444"},
		},
		Questions: []QuestionRecord{
			{ID: 1, Scale: 5, Title: "¿Cuán útil te ha resultado este taller?",
				G1: ScoreDistribution{1: 0, 2: 0, 3: 0, 4: 3, 5: 4}, G2: ScoreDistribution{1: 0, 2: 0, 3: 1, 4: 4, 5: 2}},
			{ID: 2, Scale: 5, Title: "¿Cuánto lo recomendarías?",
				G1: ScoreDistribution{1: 0, 2: 0, 3: 0, 4: 3, 5: 4}, G2: ScoreDistribution{1: 0, 2: 0, 3: 2, 4: 2, 5: 3}},
			{ID: 3, Scale: 5, Title: "Módulo 1: Introducción a las emociones",
				G1: ScoreDistribution{1: 0, 2: 2, 3: 0, 4: 2, 5: 3}, G2: ScoreDistribution{1: 0, 2: 1, 3: 2, 4: 2, 5: 2}},
			{ID: 4, Scale: 5, Title: "Módulo 2: Emociones básicas",
				G1: ScoreDistribution{1: 0, 2: 1, 3: 1, 4: 3, 5: 2}, G2: ScoreDistribution{1: 0, 2: 1, 3: 1, 4: 3, 5: 2}},
			{ID: 5, Scale: 5, Title: "Módulo 3: Sentimientos y comunicación",
				G1: ScoreDistribution{1: 0, 2: 0, 3: 1, 4: 2, 5: 4}, G2: ScoreDistribution{1: 1, 2: 0, 3: 2, 4: 2, 5: 2}},
			{ID: 6, Scale: 5, Title: "Módulo 4: Reuniones y negociación",
				G1: ScoreDistribution{1: 0, 2: 0, 3: 1, 4: 1, 5: 5}, G2: ScoreDistribution{1: 0, 2: 0, 3: 0, 4: 4, 5: 3}},
			{ID: 7, Scale: 5, Title: "¿Cómo te has sentido al realizar las tareas?",
				G1: ScoreDistribution{1: 0, 2: 0, 3: 3, 4: 3, 5: 1}, G2: ScoreDistribution{1: 1, 2: 1, 3: 1, 4: 3, 5: 1}},
		},
		Scale10: QuestionRecord{
			ID:    Scale10QuestionID,
			Scale: 10,
			Title: "¿Qué nota le pones a este taller? (Escala 1-10)",
			G1:    ScoreDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0, 7: 0, 8: 1, 9: 4, 10: 2},
			G2:    ScoreDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0, 7: 2, 8: 2, 9: 2, 10: 1},
		},
		Feedback: []FeedbackCorpus{
			{
				Key:   "q8",
				Title: "8. ¿Qué te llevas de este taller?",
				G1: []string{
					"Cosas a trabajar y mejorar. Y lo mas importante, herramientas de como trabajarlas y como orientarlas.",
					"Una buena experiencia, y el haber aprendido a darme cuenta de ciertas cosas más rápido que antes, las cual me costaba ver o apreciar.",
					"Me llevo varias cosas, pero sobre todo me quedo con como influyen nuestros pensamientos en nuestras emociones",
					"DIferenciar mejor mis emociones, ayudarme a gestionarlas de diferente forma y sobre todo a utilizar la energia negativa para impulsarme en lugar de encerrarme",
					"Me llevo entender mis emociones mejor y las explicaciones como comunicaodres",
					"Reflexión y cambio en alguna manera de actuar que tenía.",
					"Tarea y mucha. Es fundamental para mi integrar realmente que las cosas pasan quiera yo o no, y lo importante es cómo me lo tomo yo, cómo lo siento. A partir de ahí, tengo que evolucionar como persona.",
				},
				G2: []string{
					"Cuando algo no sale como yo quiero, aceptarlo, antes de enfadarme.",
					"Conocerme mejor, gestionar sentimientos, actuar ante situaciones de otra manera",
					"Identificar de manera clara las emociones, y ayudarnos mediante las tareas a hacer una mirada interna real de y como estas nos arrastran a ciertas situaciones cuando no las controlamos.",
					"Ver las cosas desde otro punto",
					"Muchas cosas pero sobre todo a conocerte más distinguir lo que pasa x tu mente y cuerpo y saber responder y canalizarlo !",
					"Conocerme a mí mismo",
					"La idea de que esta en nosotros cambiar las cosas",
				},
			},
			{
				Key:   "q9",
				Title: "9. ¿Qué crees que necesitas ampliar y/o qué te gustaría trabajar (laboral o personal)?",
				G1: []string{
					"Personal",
					"laboral",
					"Quizás me hubiera gustado poder realizar el ejercicio de negociación una segunda vez en la que pudiéramos pulir los aspectos mejorables de la primera y ver que el resultado aplicando todo esto es el que se busca",
					"Me gustaria ampliar la parte de los modulos 3 y 4",
					"Me gustaria ampliar mis conocimientos en como gestionar equipos en funcion de las personalidades de cada uno",
					"Herramientas para no obsesionarme tanto en determinadas situaciones .",
					"Necesitaría un folio muy grande... quiero trabajar/ampliar todo. Estoy en un momento, sobre todo laboral, donde no encuentro sentido a mi función en la empresa... busco reorientarme o reinventarme...",
				},
				G2: []string{
					"Madurar los conocimientos adquiridos.",
					"Sacar todos los sentimientos que están enquistados",
					"Que las emociones no me sobrepasen.",
					"Laboral",
					"Sobre todo a expresar mis sentimientos y emociones q no lo suelo hacer !",
					"Enfocarlo aún más a lo laboral",
					"mas módulos de negociación",
				},
			},
		},
		Insights: []Insight{
			{
				Heading: "Impacto y Consciencia (El \"Darse Cuenta\")",
				Body: "Ambos grupos muestran un salto cualitativo en autoconsciencia. Se repiten patrones clave: " +
					"pasar de la reacción a la proactividad (\"aceptar antes de enfadarme\", \"utilizar la energía negativa para impulsarme\"). " +
					"El taller ha logrado aterrizar conceptos teóricos en empoderamiento personal. Existe una clara asimilación " +
					"de que la gestión emocional empieza por la responsabilidad individual.",
			},
			{
				Heading: "Áreas de Desarrollo y Necesidades Futuras",
				Body: "Detectamos dos vertientes claras para el seguimiento: " +
					"1. Profundización Personal: necesidad de soltar bloqueos (\"sentimientos enquistados\") y rebajar la rumiación o sobreanálisis (\"no obsesionarme tanto\"). " +
					"2. Aplicación Profesional (Liderazgo): apetito evidente por llevar esto a la gestión de equipos, mejorar las reuniones " +
					"(más role-play de negociación) e incluso resolver crisis de propósito laboral.",
			},
		},
	}
}
