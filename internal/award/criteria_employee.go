package award

var patternACriteria = []Criterion{
	{
		ID:    "emp-perf",
		Title: Text{Ar: "الأداء والإنجاز", En: "Performance & Achievement"},
		Description: Text{
			Ar: "يركز على أداء الموظف وإنجازاته الوظيفية والمهنية، ويتضمن ذلك حجم ونوعية الأداء وطبيعة الإنجازات، بما في ذلك تحقيق أهداف تزيد عن المتوقع أو تتفوق على متطلبات عمله الوظيفي. ويتضمن كذلك إنجاز مهام صعبة تتطلب وقتًا وجهدًا وعملًا دؤوبًا.",
			En: "Focuses on the employee's job and professional performance and achievements, including the volume and quality of performance and the nature of accomplishments, including achieving goals that exceed expectations or surpass job requirements. Also includes completing difficult tasks requiring time, effort, and diligent work.",
		},
		Points: "40",
		EvidenceAr: []string{
			"أدلة/أمثلة على الجهود المبذولة لتحقيق أهداف محددة وإنجازات فردية",
			"أدلة/أمثلة على التغلب على المعوقات والصعوبات",
			"أدلة/أمثلة على سرعة ودقة الإنجازات مقارنة بالمواعيد المحددة لها",
			"أدلة/أمثلة على مدى تجاوز التوقعات ومهام الوظيفة",
			"أدلة/أمثلة على العمل ضمن خطة واضحة بمؤشرات أداء محددة وأطر زمنية",
		},
		EvidenceEn: []string{
			"Evidence/examples of doing efforts to achieve specific objectives and individual achievements.",
			"Evidence/examples of overcoming obstacles and difficulties.",
			"Evidence/examples on speed and accuracy of achievements in comparison with the deadlines.",
			"Evidence/examples of exceeding expectations and functions.",
			"Evidence/examples of working within a clear plan with a specific performance indicators and timeframes.",
		},
	},
	{
		ID:    "emp-init",
		Title: Text{Ar: "المبادرة والإبداع", En: "Initiative & Creativity"},
		Description: Text{
			Ar: "يركز هذا المعيار على مدى مبادرة الموظف في تقديم أفكار أو اقتراحات أو دراسات أو مبادرات أو أساليب عمل متميزة ومبدعة تساهم في تطوير الأداء أو تحسين الإنتاجية أو الارتقاء بمستوى الخدمات المقدمة للمتعاملين أو تبسيط الإجراءات.",
			En: "Focuses on the employee's initiative in presenting ideas, suggestions, studies, initiatives, or distinguished and creative work methods that contribute to developing performance, improving productivity, enhancing services provided to customers, or simplifying procedures.",
		},
		Points: "15",
		EvidenceAr: []string{
			"اقتراح أفكار ومنهجيات وعمليات عمل فعالة بشكل منهجي",
			"أمثلة تُظهر مدى حرص الموظف على تحسين مهارات الحاسوب والإنترنت واللغات ومهارات التواصل أو المهارات التخصصية المرتبطة بالوظيفة",
			"أدلة/أمثلة على التحسين المستمر لإجراءات العمل والخدمات",
			"أدلة/أمثلة على طبيعة الإبداع ونتائجه وتأثيراته",
		},
		EvidenceEn: []string{
			"Systematically suggesting effective ideas and work methodologies and processes.",
			"Examples to demonstrate the employee attention to improve the computer skills, internet skills, languages, communication skills, or specialized skills related to the job.",
			"Evidence/examples of continuous improvement of work procedures and services.",
			"Evidence/examples of nature of creativity and its results and impacts.",
		},
	},
	{
		ID:    "emp-collab",
		Title: Text{Ar: "التعاون والالتزام الوظيفي", En: "Collaboration & Job Commitment"},
		Description: Text{
			Ar: "يركز هذا المعيار على درجة تعاون الموظف مع المتعاملين من خارج الشركة ومن داخلها، ومدى الإيجابية في التعامل معهم. كما يركز على درجة الالتزام الوظيفي والسلوكي للموظف من خلال التزامه بالأنظمة المؤسسية واحترامه لها، مدعمًا بسجل وظيفي خالٍ من المخالفات بأنواعها.",
			En: "Focuses on the degree of employee collaboration with internal and external customers, and the positivity in dealing with them. Also focuses on the employee's job and behavioral commitment through adherence to and respect for organizational systems, supported by a professional record free of violations.",
		},
		Points: "15",
		EvidenceAr: []string{
			"أمثلة/أدلة توضح درجة تعاون وأسلوب تعامل الموظف مع المتعاملين من داخل وخارج المؤسسة",
			"أمثلة/أدلة تؤكد حرص الموظف واستعداده لبذل جهود/وقت إضافي",
			"أمثلة/أدلة عملية تُظهر قدرة وحرص الموظف على العمل ضمن فرق العمل",
			"أمثلة/أدلة عملية توضح احترام الموظف لأنظمة وقوانين المؤسسة ومدى التزامه وتطبيقه لمبادئها وقواعدها",
		},
		EvidenceEn: []string{
			"Examples/evidence showing the degree of cooperation and the employee's dealings with clients from inside and outside SAM.",
			"Examples/evidence confirming the employee's eagerness to put in extra efforts/time.",
			"Examples/practical evidence that demonstrate the employee's ability and eagerness to work within work teams.",
			"Practical examples/evidence that illustrate the employee's respect for the SAM's regulations and laws, and the extent of his adherence and commitment to implementing the principles and rules they contain.",
		},
	},
	{
		ID:    "emp-resp",
		Title: Text{Ar: "المشاركة وتحمل المسؤولية", En: "Participation & Responsibility"},
		Description: Text{
			Ar: "يركز هذا المعيار على مدى حرص الموظف على المشاركة في النشاطات والفعاليات الرسمية وغير الرسمية التي تنظمها/تشارك بها المؤسسة، ومدى مساهمته في الجهود التطوعية التي ترعاها. كما يركز هذا المعيار على درجة تحمل الموظف لمسؤولياته الوظيفية خاصة في الحالات غير الروتينية.",
			En: "Focuses on the employee's keenness to participate in official and unofficial activities organized by the organization, contribution to volunteer efforts, and degree of responsibility especially in non-routine situations.",
		},
		Points: "15",
		EvidenceAr: []string{
			"الأعمال التطوعية التي قام بها الموظف، ومدى علاقتها بمتطلبات عمله الوظيفي",
			"المشاركة في النشاطات والفعاليات الرسمية وغير الرسمية التي تنظمها المؤسسة",
			"درجة تحمل الموظف لمسؤولية ما يكلف به من مهام خاصة في الحالات غير الروتينية",
			"درجة تحمل الموظف لضغوط العمل ومتطلباته، ومدى تجاوب الموظف وهدوءه وحسن تصرفه في تلك المواقف",
		},
		EvidenceEn: []string{
			"The volunteer work carried out by the employee, and the extent of its relationship to the requirements of his job.",
			"Participating in official and informal activities and events organized by SAM, whether financially or morally.",
			"The degree to which the employee bears responsibility for the tasks assigned to him, especially in unusual/routine cases.",
			"The employee's degree of tolerance for work pressures and requirements and the extent of the employee's responsiveness, calmness, and good behavior in those situations.",
		},
	},
	{
		ID:    "emp-learn",
		Title: Text{Ar: "التعلم المستمر", En: "Continuous Learning"},
		Description: Text{
			Ar: "يركز هذا المعيار على مدى رغبة وقدرة الموظف على تعلم المهارات المتعلقة بمهام عمله، ومدى استفادته من خبرات زملائه، والجهود التي يبذلها الموظف للاطلاع على أية معارف أو معلومات حديثة تتعلق بعمله وتساهم في تطوير أدائه.",
			En: "Focuses on the employee's desire and ability to learn skills related to work tasks, benefiting from colleagues' experiences, and efforts to acquire new knowledge or information that contributes to developing performance.",
		},
		Points: "15",
		EvidenceAr: []string{
			"أدلة/أمثلة على تبادل المعرفة مع الآخرين",
			"أدلة/أمثلة على اكتساب المعرفة والمهارات بسرعة",
			"أدلة/أمثلة على المشاركة في مجموعات/هيئات مهنية متخصصة",
			"حجم التبادل المعرفي بين الموظف وبين زملائه والمتعاملين والشركاء، وأساليب التبادل ومدى الاستفادة من هذه المعرفة في العمل",
			"الجهود المبذولة من الموظف لتحسين تحصيله العلمي وضمان التطوير الذاتي لقدراته ومهاراته",
		},
		EvidenceEn: []string{
			"Evidence/examples of exchanging knowledge with others.",
			"Evidence/examples of acquiring knowledge and skills quickly.",
			"Evidence/examples of participating in professional specialized groups/bodies.",
			"The volume of knowledge exchange between the employee and his colleagues, customers, and partners, the methods of exchange, and the extent of benefiting from this knowledge at work.",
			"The efforts made by the employee to improve his educational attainment, and to ensure the self-development of his abilities and skills.",
		},
	},
}

var leaderCriteria = []Criterion{
	{
		ID:    "ldr-perf",
		Title: Text{Ar: "الأداء الاستراتيجي والأثر", En: "Strategic Performance & Impact"},
		Description: Text{
			Ar: "يقيّم فعالية القيادة في تحقيق نتائج مؤسسية وقيادة مبادرات استراتيجية وتحقيق نتائج قابلة للقياس تخلق قيمة مستدامة لأصحاب المصلحة.",
			En: "Evaluates leadership effectiveness in achieving organizational results, leading strategic initiatives, and delivering measurable outcomes that create sustainable value for stakeholders.",
		},
		Points: "20",
		EvidenceAr: []string{
			"أدلة/أمثلة على قيادة مبادرات تحقق أو تتجاوز الأهداف والغايات الاستراتيجية المؤسسية",
			"أدلة/أمثلة على التغلب بنجاح على تحديات مؤسسية معقدة والتعامل مع العقبات",
			"أدلة/أمثلة على تحقيق نتائج بكفاءة وجودة وفي الوقت المحدد على المستوى الاستراتيجي",
			"أدلة/أمثلة على تجاوز التوقعات في القيادة والابتكار والتأثير عبر الوظائف",
			"أدلة/أمثلة على تطوير وتنفيذ استراتيجيات واضحة وخطط عمل بمؤشرات أداء ومقاييس وجداول زمنية محددة",
			"أدلة/أمثلة على دفع خلق قيمة مستدامة تشمل الأثر المالي والتشغيلي والاجتماعي والبيئي",
		},
		EvidenceEn: []string{
			"Evidence / examples of Leading initiatives that achieve or exceed strategic objectives and organizational goals.",
			"Evidence / examples of Successfully overcoming complex organizational challenges and navigating obstacles.",
			"Evidence / examples of Delivering results with efficiency, quality, and timeliness at a strategic level.",
			"Evidence / examples of Exceeding expectations in leadership, innovation, and cross-functional influence.",
			"Evidence / examples of Developing and executing clear strategies and action plans with defined KPIs, performance metrics, and timelines.",
			"Evidence / examples of Driving sustainable value creation, including financial, operational, social, and environmental impact.",
		},
	},
	{
		ID:    "ldr-innov",
		Title: Text{Ar: "المبادرة الاستراتيجية وقيادة الابتكار", En: "Strategic Initiative & Innovation Leadership"},
		Description: Text{
			Ar: "يقيّم قدرة القيادة على المبادرة الاستباقية ورعاية وقيادة أفكار ودراسات ومبادرات مبتكرة تعزز الأداء المؤسسي والإنتاجية وتجربة العملاء وكفاءة العمليات.",
			En: "Evaluates leadership's ability to proactively initiate, sponsor, and lead innovative ideas, studies, and initiatives that enhance organizational performance, productivity, customer experience, and process efficiency.",
		},
		Points: "15",
		EvidenceAr: []string{
			"المبادرة وتبني أفكار ومنهجيات ونماذج تشغيلية مبتكرة تدفع التحسين المؤسسي",
			"إنشاء مناهج منظمة للابتكار والتحسين المستمر وتبسيط العمليات عبر المؤسسة",
			"قيادة واستدامة التحسين المستمر لإجراءات العمل والخدمات ونماذج الأعمال",
			"إظهار الالتزام بتطوير القدرات الشخصية والمؤسسية بما في ذلك القيادة الرقمية واتخاذ القرارات المبنية على البيانات",
			"إظهار الإبداع في التفكير الاستراتيجي وحل المشكلات مدعوماً بنتائج قابلة للقياس وأثر مؤسسي إيجابي",
		},
		EvidenceEn: []string{
			"Evidence / examples of Proactively initiating and championing innovative ideas, methodologies, and operating models that drive organizational improvement.",
			"Evidence / examples of Establishing systematic approaches for innovation, continuous improvement, and process simplification across the organization.",
			"Evidence/examples of Leading and sustaining continuous improvement of work procedures, services, and business models.",
			"Evidence/examples Demonstrated commitment to personal and organizational capability development, including digital leadership, data-driven decision-making, communication, languages, or specialized executive competencies.",
			"Evidence / examples Demonstrating creativity in strategic thinking and problem-solving, supported by measurable results and positive organizational impact (financial, operational, customer, or societal).",
		},
	},
	{
		ID:    "ldr-stake",
		Title: Text{Ar: "التعاون مع أصحاب المصلحة والالتزام القيادي", En: "Stakeholder Collaboration & Leadership Commitment"},
		Description: Text{
			Ar: "يقيّم فعالية القيادة في بناء علاقات منتجة مع أصحاب المصلحة الداخليين والخارجيين وإظهار المشاركة الإيجابية والتعاون والالتزام القوي بالقيم المؤسسية والحوكمة والسلوك الأخلاقي.",
			En: "Evaluates leadership effectiveness in building productive relationships with internal and external stakeholders and demonstrating positive engagement, collaboration, and strong commitment to organizational values, governance, and ethical behavior.",
		},
		Points: "15",
		EvidenceAr: []string{
			"إظهار القيادة في تعزيز التعاون الفعال والمشاركة البناءة مع الفرق الداخلية والشركاء والعملاء وأصحاب المصلحة الخارجيين",
			"الالتزام الشخصي والمساءلة بما في ذلك الاستعداد لاستثمار جهد ووقت إضافي لتحقيق الأولويات الاستراتيجية المؤسسية",
			"قيادة وتمكين والمشاركة في فرق عمل عالية الأداء وتعزيز التعاون عبر الوظائف والمستويات التنظيمية",
			"احترام أنظمة وسياسات وأطر SAM القانونية وسلوك قدوة متسق في تطبيق مبادئ الحوكمة",
			"سجل مهني يعكس النزاهة والامتثال والالتزام بالمعايير الأخلاقية خالٍ من المخالفات",
		},
		EvidenceEn: []string{
			"Evidence / examples Demonstrated leadership in fostering effective cooperation and constructive engagement with internal teams and external partners, clients, and stakeholders.",
			"Evidence / examples of personal commitment and accountability, including willingness to invest additional effort and time to achieve organizational priorities and strategic objectives.",
			"Evidence/examples of leading, empowering, and participating in high-performing teams, promoting collaboration across functions and organizational levels.",
			"Evidence/examples of respect for SAM's regulations, policies, and legal frameworks, and consistent role-model behavior in applying governance principles.",
			"Evidence/examples of A professional conduct record reflecting integrity, compliance, and adherence to ethical standards, free from violations or misconduct.",
		},
	},
	{
		ID:    "ldr-account",
		Title: Text{Ar: "المساءلة والمشاركة والمساهمة المجتمعية", En: "Accountability, Engagement & Community Contribution"},
		Description: Text{
			Ar: "يقيّم التزام القيادة بالمسؤولية المشتركة والمشاركة الفعالة في المبادرات المؤسسية والمجتمعية والمساءلة الشخصية في قيادة المؤسسة عبر المواقف الروتينية وغير الروتينية بمرونة واحترافية.",
			En: "Evaluates leadership commitment to shared responsibility, active participation in organizational and community initiatives, and personal accountability in leading through routine and non-routine situations with flexibility and professionalism.",
		},
		Points: "15",
		EvidenceAr: []string{
			"المشاركة الفعالة والقيادة في أنشطة وفعاليات SAM الرسمية وغير الرسمية",
			"مساهمة ذات معنى في مبادرات التطوع والمسؤولية الاجتماعية المتوافقة مع القيم والأهداف الاستراتيجية المؤسسية",
			"إظهار الملكية والمساءلة عن المسؤوليات المسندة خاصة في المواقف المعقدة وغير الروتينية أو عالية المخاطر",
			"المرونة والهدوء تحت الضغط بما في ذلك اتخاذ القرارات بهدوء والاستجابة والسلوك البنّاء",
			"كونه قدوة في تقاسم المسؤولية ودعم الآخرين وتعزيز ثقافة الالتزام والثقة والتعاون",
		},
		EvidenceEn: []string{
			"Evidence / examples of Active participation and leadership in official and informal activities and events organized or supported by SAM, through personal involvement, sponsorship, or advocacy.",
			"Evidence/examples of Meaningful contribution to volunteer and social responsibility initiatives aligned with organizational values and strategic objectives.",
			"Evidence/examples Demonstrated ownership and accountability for assigned responsibilities, particularly in complex, non-routine, or high-risk situations.",
			"Evidence/examples of resilience and composure under pressure, including calm decision-making, responsiveness, and constructive behavior.",
			"Evidence / examples of Acting as a role model in sharing responsibility, supporting others, and fostering a culture of commitment, trust, and collaboration.",
		},
	},
	{
		ID:    "ldr-learn",
		Title: Text{Ar: "التعلم الاستراتيجي وقيادة المعرفة", En: "Strategic Learning & Knowledge Leadership"},
		Description: Text{
			Ar: "يقيّم التزام القيادة بالتعلم المستمر ومشاركة المعرفة وتطوير القدرات ومدى الاستفادة من التعلم لتعزيز الفعالية الشخصية والأداء المؤسسي.",
			En: "Evaluates leadership commitment to continuous learning, knowledge sharing, capability development, and leveraging learning to enhance personal effectiveness and organizational performance.",
		},
		Points: "15",
		EvidenceAr: []string{
			"التبادل الفعال للمعرفة والرؤى وأفضل الممارسات مع الزملاء والعملاء والشركاء وأصحاب المصلحة",
			"القدرة المُثبتة على اكتساب وتطبيق معرفة ومهارات وكفاءات جديدة بسرعة",
			"المشاركة والقيادة في هيئات مهنية ومتخصصة وقطاعية والمساهمة في الريادة الفكرية",
			"آليات تبادل معرفة منظمة مثل التوجيه ومجتمعات الممارسة والمنصات التعاونية",
			"الاستثمار المستمر في التطوير الذاتي من خلال التعليم والتعلم التنفيذي والشهادات",
		},
		EvidenceEn: []string{
			"Evidence / examples of Actively exchanging knowledge, insights, and best practices with colleagues, customers, partners, and stakeholders to support informed decision-making and innovation.",
			"Evidence / examples Demonstrated ability to rapidly acquire and apply new knowledge, skills, and competencies relevant to executive and organizational needs.",
			"Evidence / examples of Participation and leadership in professional, specialized, or industry bodies, contributing to thought leadership and organizational learning.",
			"Evidence / examples of structured knowledge exchange mechanisms (formal and informal), such as mentoring, communities of practice, or collaborative platforms, and effective application of shared knowledge in work outcomes.",
			"Evidence/examples of Continuous investment in self-development through education, executive learning, certifications, or strategic skill enhancement to build current and future leadership capabilities.",
		},
	},
	{
		ID:    "ldr-vision",
		Title: Text{Ar: "القيادة الرؤيوية والكفاءة", En: "Visionary Leadership & Competency"},
		Description: Text{
			Ar: "يقيّم فعالية القيادة في تحديد التوجه والتخطيط والقيادة والتفويض والتحفيز وتطوير الكوادر مع ضمان التنفيذ الكفء وحوكمة الأداء والنجاح المؤسسي المستدام.",
			En: "Evaluates leadership effectiveness in setting direction, planning, leading, delegating, motivating, and developing talent while ensuring efficient execution, performance governance, and sustainable organizational success.",
		},
		Points: "20",
		EvidenceAr: []string{
			"القدرة المُثبتة على تطوير خطط عمل استراتيجية وتشغيلية واضحة للوحدات التنظيمية والفرق متعددة الوظائف وتنفيذها بفعالية",
			"القدرة على اكتساب وتطبيق المعرفة القيادية والإدارية والتقنية بسرعة لتلبية الاحتياجات المؤسسية المتطورة",
			"تطبيق أنظمة قياس أداء قوية لتقييم الأداء الشخصي والفريقي والمؤسسي مقابل أهداف ومؤشرات أداء محددة",
			"بناء وتعزيز رأس المال البشري وقدرات العمل الجماعي وتعزيز الحافز والمبادرة والإبداع والمساءلة",
			"كونه قدوة في النزاهة والاحترافية والأداء العالي والتأثير الإيجابي على المواقف والسلوكيات عبر المؤسسة",
			"تقديم المصالح المؤسسية لـ SAM على المصالح الشخصية في اتخاذ القرارات والإجراءات القيادية",
			"الاستخدام الفعال للموارد المتاحة وتعظيم العائد على الاستثمار وضمان الإدارة المسؤولة",
			"القيادة المُثبتة في إدارة التغيير ودفع التحسين المستمر وتمكين التحول نحو أداء مؤسسي أفضل",
		},
		EvidenceEn: []string{
			"Evidence/examples Demonstrated ability to develop clear strategic and operational action plans for organizational units and cross-functional teams, and to execute them effectively.",
			"Evidence / examples of Ability to rapidly acquire and apply leadership, managerial, and technical knowledge to address evolving organizational needs.",
			"Evidence / examples of Application of robust performance measurement systems to assess personal, team, and organizational performance against defined goals and KPIs.",
			"Evidence / examples of Building and strengthening human capital and teamwork capabilities, fostering motivation, initiative, creativity, and accountability.",
			"Evidence / examples of Acting as a role model for integrity, professionalism, and high performance, positively influencing attitudes and behaviors across the organization.",
			"Evidence/examples of prioritizing SAM's institutional interests over personal interests in decision-making and leadership actions.",
			"Evidence / examples of Effective utilization of available resources, maximizing return on investment and ensuring responsible stewardship.",
			"Evidence/examples Demonstrated leadership in managing change, driving continuous improvement, and enabling transformation toward enhanced organizational performance.",
		},
	},
}

var futureLeaderCriteria = []Criterion{
	{
		ID:    "fl-perf",
		Title: Text{Ar: "الأداء والإنجاز", En: "Performance & Achievement"},
		Description: Text{
			Ar: "يتناول الأداء المهني والإنجازات للموظف. يشمل نوع وجودة الأداء والإنجازات مع تجاوز الأهداف وإنجاز مهام صعبة تتطلب وقتاً وجهداً وصبراً.",
			En: "Covers the employee's professional performance and achievements. Includes the type and quality of performance with exceeding targets and completing challenging tasks requiring time, effort, and patience.",
		},
		Points: "20",
		EvidenceAr: []string{
			"أدلة/أمثلة على بذل جهود لتحقيق أهداف محددة وإنجازات فردية",
			"أدلة/أمثلة على التغلب على العقبات والصعوبات",
			"أدلة/أمثلة على سرعة ودقة الإنجازات مقارنة بالمواعيد النهائية",
			"أدلة/أمثلة على تجاوز التوقعات والمهام المحددة",
			"أدلة/أمثلة على العمل ضمن خطة واضحة بمؤشرات أداء محددة وأطر زمنية",
		},
		EvidenceEn: []string{
			"Evidence/examples of doing efforts to achieve specific objectives and individual achievements.",
			"Evidence/examples of overcoming obstacles and difficulties.",
			"Evidence/examples on speed and accuracy of achievements in comparison with the deadlines.",
			"Evidence/examples of exceeding expectations and functions.",
			"Evidence/examples of working within a clear plan with a specific performance indicators and timeframes.",
		},
	},
	{
		ID:    "fl-init",
		Title: Text{Ar: "المبادرة والإبداع", En: "Initiative & Creativity"},
		Description: Text{
			Ar: "يتناول مبادرة الموظف الذاتية لاقتراح أفكار جديدة ودراسات وأبحاث أو مبادرات لتحسين أداء العمل أو الإنتاجية أو خدمة العملاء أو تبسيط العمليات.",
			En: "Covers the employee's self-initiative in proposing new ideas, studies, research, or initiatives to improve work performance, productivity, customer service, or simplify processes.",
		},
		Points: "15",
		EvidenceAr: []string{
			"اقتراح أفكار ومنهجيات وعمليات عمل فعالة بشكل منهجي",
			"أمثلة تُظهر اهتمام الموظف بتحسين مهارات الحاسوب والإنترنت واللغات ومهارات التواصل أو المهارات التخصصية المرتبطة بالوظيفة",
			"أدلة/أمثلة على التحسين المستمر لإجراءات العمل والخدمات",
			"أدلة/أمثلة على طبيعة الإبداع ونتائجه وتأثيراته",
		},
		EvidenceEn: []string{
			"Evidence/examples of Systematically suggesting effective ideas and work methodologies and processes.",
			"Evidence / examples demonstrate the employee attention to improve the computer skills, internet skills, languages, communication skills, or specialized skills related to the job.",
			"Evidence/examples of continuous improvement of work procedures and services.",
			"Evidence/examples of nature of creativity and its results and impacts.",
		},
	},
	{
		ID:    "fl-collab",
		Title: Text{Ar: "التعاون والالتزام الوظيفي", En: "Collaboration & Job Commitment"},
		Description: Text{
			Ar: "يركز على درجة تعاون الموظف مع العملاء من داخل وخارج SAM ومدى إيجابيته في التعامل معهم. كما يركز على درجة الالتزام الوظيفي والسلوكي من خلال احترام الأنظمة المؤسسية.",
			En: "Focuses on the degree of employee collaboration with internal and external SAM customers and their positive attitude. Also focuses on job and behavioral commitment through respect for organizational systems.",
		},
		Points: "15",
		EvidenceAr: []string{
			"أمثلة/أدلة على درجة التعاون وتعامل الموظف مع العملاء من داخل وخارج SAM",
			"أمثلة/أدلة على حرص الموظف على بذل جهد/وقت إضافي",
			"أمثلة/أدلة عملية على قدرة وحرص الموظف على العمل ضمن فرق عمل",
			"أمثلة/أدلة عملية على احترام الموظف لأنظمة وقوانين SAM ومدى التزامه وتطبيقه لمبادئها وقواعدها",
		},
		EvidenceEn: []string{
			"Evidence / examples of showing the degree of cooperation and the employee's dealings with clients from inside and outside SAM.",
			"Evidence/examples of confirming the employee's eagerness to put in extra efforts/time.",
			"Evidence/examples demonstrate the employee's ability and eagerness to work within work teams.",
			"Evidence/examples illustrate the employee's respect for the SAM's regulations and laws, and the extent of his adherence and commitment to implementing the principles and rules they contain.",
		},
	},
	{
		ID:    "fl-resp",
		Title: Text{Ar: "المشاركة وتحمل المسؤولية", En: "Participation & Responsibility"},
		Description: Text{
			Ar: "يركز على مدى حرص الموظف على المشاركة في الأنشطة والفعاليات الرسمية وغير الرسمية التي تنظمها/تشارك فيها SAM، ومدى مساهمته في الجهود التطوعية. كما يركز على درجة تحمل الموظف لمسؤولياته الوظيفية خاصة في الحالات غير الروتينية.",
			En: "Focuses on the employee's participation in official and unofficial SAM activities, volunteer efforts, and the degree of responsibility especially in non-routine situations.",
		},
		Points: "15",
		EvidenceAr: []string{
			"العمل التطوعي الذي قام به الموظف ومدى علاقته بمتطلبات عمله",
			"المشاركة في الأنشطة والفعاليات الرسمية وغير الرسمية التي تنظمها SAM سواء مادياً أو معنوياً",
			"درجة تحمل الموظف للمسؤولية عن المهام الموكلة إليه خاصة في الحالات غير الروتينية",
			"درجة تحمل الموظف لضغوط ومتطلبات العمل ومدى استجابته وهدوئه وحسن تصرفه في تلك المواقف",
		},
		EvidenceEn: []string{
			"Evidence / examples of The volunteer work carried out by the employee, and the extent of its relationship to the requirements of his job.",
			"Evidence / examples of Participating in official and informal activities and events organized by SAM, whether financially or morally.",
			"Evidence / examples of The degree to which the employee bears responsibility for the tasks assigned to him, especially in unusual / routine cases.",
			"Evidence / examples of The employee's degree of tolerance for work pressures and requirements and the extent of the employee's responsiveness, calmness, and good behavior in those situations.",
		},
	},
	{
		ID:    "fl-learn",
		Title: Text{Ar: "التعلم المستمر", En: "Continuous Learning"},
		Description: Text{
			Ar: "يتناول رغبة الموظف في تعلم المهارات المتعلقة بعمله ومستوى استفادته من خبرات زملائه والجهود المبذولة لاكتساب المعرفة التي يمكن أن تحسن أداءه.",
			En: "Covers the employee's desire to learn job-related skills, benefiting from colleagues' experiences, and efforts to acquire knowledge that can improve performance.",
		},
		Points: "15",
		EvidenceAr: []string{
			"أدلة/أمثلة على تبادل المعرفة مع الآخرين",
			"أدلة/أمثلة على اكتساب المعرفة والمهارات بسرعة",
			"أدلة/أمثلة على المشاركة في مجموعات/هيئات مهنية متخصصة",
			"حجم تبادل المعرفة بين الموظف وزملائه وعملائه وشركائه وأساليب التبادل ومدى الاستفادة من هذه المعرفة في العمل",
			"الجهود المبذولة من الموظف لتحسين تحصيله العلمي وضمان التطوير الذاتي لقدراته ومهاراته",
		},
		EvidenceEn: []string{
			"Evidence/examples of exchanging knowledge with others.",
			"Evidence/examples of acquiring knowledge and skills quickly.",
			"Evidence/examples of participating in professional specialized groups/ bodies.",
			"Evidence / examples of The volume of knowledge exchange between the employee and his colleagues, customers, and partners, the methods of exchange, and the extent of benefiting from this knowledge at work.",
			"Evidence / examples of The efforts made by the employee to improve his educational attainment, and to ensure the self-development of his abilities and skills.",
		},
	},
	{
		ID:    "fl-vision",
		Title: Text{Ar: "الرؤية والمهارات الإشرافية", En: "Vision & Supervisory Skills"},
		Description: Text{
			Ar: "يتناول المهارات القيادية والإشرافية المتعلقة بالتخطيط والتنظيم والقيادة والتفويض والتحفيز والتدريب.",
			En: "Covers leadership and supervisory skills related to planning, organizing, leading, delegating, motivating, and training.",
		},
		Points: "20",
		EvidenceAr: []string{
			"أدلة/أمثلة على القدرة على تطوير خطط عمل للوحدة التنظيمية/فريق العمل وتنفيذها بكفاءة",
			"أدلة/أمثلة على اكتساب المعرفة والمهارات بسرعة",
			"أدلة/أمثلة على مدى تطبيق أساليب موثوقة لقياس مستوى أدائه وأداء فريق عمله من حيث مدى تحقيق الأهداف",
			"أدلة/أمثلة على بناء قدرات الموارد البشرية وفريق العمل وتحفيزهم على المبادرة والإبداع",
			"أدلة/أمثلة على كونه قدوة للمرؤوسين في السلوك والأداء",
			"أدلة/أمثلة على تقديم مصلحة SAM على المصلحة الشخصية",
			"أدلة/أمثلة على الاستفادة من الموارد المتاحة وتعظيم العائد من هذه الموارد",
			"أدلة/أمثلة على القدرة على إدارة التغيير والتطوير نحو الأفضل",
		},
		EvidenceEn: []string{
			"Evidence/examples of the ability to develop action plans for the organizational unit / team work and executing them efficiently.",
			"Evidence/examples of acquiring knowledge and skills quickly.",
			"Evidence / examples of The extent to which he applies reliable methods to measure his level of performance and the performance of his work team in terms of the extent to which goals are achieved.",
			"Evidence / examples of building human resources and teamwork capacity and motivating them to take the initiative and be creative.",
			"Evidence/examples of being a role model for subordinates in attitude and performance.",
			"Evidence/examples of prioritizing SAM interest over personal interest.",
			"Evidence/examples of benefiting from available resources and maximizing the return on these resources.",
			"Evidence/examples of the ability to manage change and develop for the better.",
		},
	},
}

// unsungScale is the supervisor rating scale shared by all unsung hero
// criteria.
var unsungScale = &RatingScale{
	Min:      1,
	Max:      10,
	MinLabel: Text{Ar: "غير مقبول", En: "Unacceptable"},
	MaxLabel: Text{Ar: "استثنائي", En: "Exceptional"},
}

var unsungCriteria = []Criterion{
	{
		ID:    "unsung-achievements",
		Title: Text{Ar: "إنجازات تفوق التوقعات (استثنائية / غير اعتيادية)", En: "Achievements Beyond Expectations (Exceptional / Extraordinary)"},
		Description: Text{
			Ar: "يجب أن يكون المرشح قد قام باستمرار بأعمال استثنائية وحقق نتائج تتجاوز التوقعات. قيم المرشح على المقياس التالي:",
			En: "The nominee must have consistently performed exceptional work and achieved results that exceed expectations. Rate the nominee on the following scale:",
		},
		Points:      "20",
		RatingScale: unsungScale,
		EvidenceAr: []string{
			"الموظفون الذين اعتادوا بشكل دائم ومستمر على أن يتجاوزوا دورهم في أداء مهامهم وواجباتهم الوظيفية اليومية، ويجدون حلولًا إبداعية لحل المشاكل، ويحصلون على نتائج رائعة تستفيد منها الشركة",
		},
		EvidenceEn: []string{
			"Employees who consistently go beyond their role in performing daily tasks and duties, find creative solutions to problems, and achieve outstanding results that benefit the company",
		},
		JustificationLabel: &Text{
			Ar: "مبررات المسؤول المباشر للإنجازات غير العادية",
			En: "Direct supervisor's justification for extraordinary achievements",
		},
	},
	{
		ID:    "unsung-rules",
		Title: Text{Ar: "اتباع قواعد الشركة وقيمها", En: "Following Company Rules & Values"},
		Description: Text{
			Ar: "يتبع دائمًا قواعد الشركة ويتصرف بأمانة واحترام. قيم المرشح على المقياس التالي:",
			En: "Always follows company rules and acts with honesty and respect. Rate the nominee on the following scale:",
		},
		Points:      "20",
		RatingScale: unsungScale,
		EvidenceAr: []string{
			"عدم وجود إنذارات أو إجراءات تأديبية تتعلق بمخاطر العمل وقضايا الصحة والسلامة",
			"يرتدي دائمًا بطاقة التعريف ويلتزم بجميع سياسات الشركة، بما في ذلك لوائح الصحة والسلامة",
			"يتبع بروتوكولات السلامة باستمرار عند استخدام المعدات والأجهزة والأدوات والآلات لضمان سلامة وأمن نفسه والآخرين",
			"يقوم بالإبلاغ بشكل استباقي عن أي مشاكل فنية أو مخاطر لفريق الصيانة أو المشرف، خاصة في البيئات عالية المخاطر",
		},
		EvidenceEn: []string{
			"No warnings or disciplinary actions related to work risks and health and safety issues",
			"Always wears ID badge and complies with all company policies, including health and safety regulations",
			"Consistently follows safety protocols when using equipment, devices, tools, and machines to ensure safety and security of themselves and others",
			"Proactively reports any technical problems or risks to the maintenance team or supervisor, especially in high-risk environments",
		},
		JustificationLabel: &Text{
			Ar: "مبررات المسؤول المباشر لاتباع قواعد الشركة وقيمها",
			En: "Direct supervisor's justification for following company rules and values",
		},
	},
	{
		ID:    "unsung-appearance",
		Title: Text{Ar: "المظهر واللباس الاحترافي", En: "Professional Appearance & Dress"},
		Description: Text{
			Ar: "يبدو دائمًا أنيقًا ويرتدي ملابس مناسبة للوظيفة. قيم المرشح على المقياس التالي:",
			En: "Always looks neat and wears appropriate clothing for the job. Rate the nominee on the following scale:",
		},
		Points:      "20",
		RatingScale: unsungScale,
		EvidenceAr: []string{
			"يرتدي الملابس المناسبة للعمل، ويبدو نظيفًا ومرتبًا، ويحصل على ردود فعل جيدة حول مظهره",
		},
		EvidenceEn: []string{
			"Wears appropriate work clothing, looks clean and tidy, and receives good feedback about appearance",
		},
		JustificationLabel: &Text{
			Ar: "مبررات المسؤول المباشر للمظهر المهني",
			En: "Direct supervisor's justification for professional appearance",
		},
	},
	{
		ID:    "unsung-attendance",
		Title: Text{Ar: "الحضور الجيد والالتزام بالمواعيد", En: "Good Attendance & Punctuality"},
		Description: Text{
			Ar: "يأتي للعمل في الوقت المحدد ونادرًا ما يغيب عن اليوم. قيم المرشح على المقياس التالي:",
			En: "Comes to work on time and rarely misses a day. Rate the nominee on the following scale:",
		},
		Points:      "20",
		RatingScale: unsungScale,
		EvidenceAr: []string{
			"نادرًا ما يأخذ أيام إجازة غير مخططة، ويصل في الوقت المحدد، ويلتزم بجدول عمله",
		},
		EvidenceEn: []string{
			"Rarely takes unplanned leave days, arrives on time, and adheres to work schedule",
		},
		JustificationLabel: &Text{
			Ar: "مبررات المسؤول المباشر للحضور الجيد والالتزام بالمواعيد",
			En: "Direct supervisor's justification for good attendance and punctuality",
		},
	},
	{
		ID:    "unsung-teamwork",
		Title: Text{Ar: "يساعد الآخرين ويعمل بشكل جيد مع الفريق", En: "Helps Others & Works Well with the Team"},
		Description: Text{
			Ar: "يعمل بشكل جيد مع الآخرين، ويساعد زملاءه، ويتمتع بسلوك إيجابي. قيم المرشح على المقياس التالي:",
			En: "Works well with others, helps colleagues, and has a positive attitude. Rate the nominee on the following scale:",
		},
		Points:      "20",
		RatingScale: unsungScale,
		EvidenceAr: []string{
			"يتلقى ردود فعل إيجابية من زملاء العمل والمتعاملين، يساعد على حل المشاكل، وعلى استعداد دائم لتقديم المساعدة",
		},
		EvidenceEn: []string{
			"Receives positive feedback from coworkers and customers, helps solve problems, and is always ready to provide assistance",
		},
		JustificationLabel: &Text{
			Ar: "مبررات المسؤول المباشر لمساعدة الآخرين والعمل بشكل جيد مع الفريق",
			En: "Direct supervisor's justification for helping others and working well with the team",
		},
	},
}
