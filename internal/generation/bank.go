package generation

import (
	"strings"

	"github.com/flashforge/flashforge-api/internal/domain"
)

// bankEntry associates an ordered list of topic patterns with hand-authored
// flashcards for that topic. Every pair in the table satisfies the structural
// constraints (6-18 word question, 1-2 sentence answer) by construction.
type bankEntry struct {
	patterns []string
	cards    []domain.Flashcard
}

// LookupTopic returns the curated flashcards for the first knowledge-bank
// entry whose pattern is a substring of the lowercased topic. An empty slice
// means no entry matched; callers must not treat that as an error.
func LookupTopic(topicLower string) []domain.Flashcard {
	for _, entry := range knowledgeBank {
		for _, pattern := range entry.patterns {
			if strings.Contains(topicLower, pattern) {
				return entry.cards
			}
		}
	}
	return nil
}

// knowledgeBank is the ordered curated table. Entries are evaluated in order
// and the first match wins, so more specific patterns come before broad ones.
// The table is immutable, initialized at process start and shared read-only
// across concurrent calls.
var knowledgeBank = []bankEntry{
	{
		patterns: []string{"pollination"},
		cards: []domain.Flashcard{
			{Question: "What is the main purpose of pollination in flowering plants?", Answer: "It transfers pollen from the male anther to the female stigma, enabling fertilization and seed production"},
			{Question: "Which animals are the most common pollinators of flowering plants?", Answer: "Bees are the most common pollinators, along with butterflies, moths, birds, and bats"},
			{Question: "How do flowers attract pollinators to visit them?", Answer: "They use bright colors, sweet nectar, and strong scents to draw pollinators in"},
			{Question: "What is the difference between self-pollination and cross-pollination?", Answer: "Self-pollination happens within one flower or plant, while cross-pollination moves pollen between different plants"},
			{Question: "Why is wind pollination common in grasses and many trees?", Answer: "Their flowers are small and produce huge amounts of lightweight pollen that travels easily on the wind"},
		},
	},
	{
		patterns: []string{"brain", "nervous system"},
		cards: []domain.Flashcard{
			{Question: "What are the three main parts of the human brain?", Answer: "The cerebrum, the cerebellum, and the brainstem"},
			{Question: "Which part of the brain controls balance and coordination?", Answer: "The cerebellum, located at the back of the head beneath the cerebrum"},
			{Question: "What is the role of neurons in the nervous system?", Answer: "Neurons carry electrical and chemical signals between the brain, spinal cord, and the rest of the body"},
			{Question: "How does the spinal cord work with the brain?", Answer: "It relays messages between the brain and the body. It also handles simple reflexes on its own"},
			{Question: "What protects the brain from injury inside the head?", Answer: "The skull, three layers of membranes called meninges, and cushioning cerebrospinal fluid"},
		},
	},
	{
		patterns: []string{"solar system", "planets"},
		cards: []domain.Flashcard{
			{Question: "How many planets orbit the Sun in our solar system?", Answer: "Eight planets, from Mercury closest to the Sun out to Neptune"},
			{Question: "Which planet is the largest in the solar system?", Answer: "Jupiter, a gas giant more massive than all the other planets combined"},
			{Question: "What keeps the planets in orbit around the Sun?", Answer: "The Sun's gravity constantly pulls the planets toward it while their momentum keeps them moving forward"},
			{Question: "Why is Mars often called the red planet?", Answer: "Iron minerals in its soil rust and give the surface a reddish color"},
			{Question: "What is the asteroid belt and where is it located?", Answer: "A region of rocky objects orbiting the Sun between Mars and Jupiter"},
		},
	},
	{
		patterns: []string{"cell division", "mitosis", "meiosis"},
		cards: []domain.Flashcard{
			{Question: "What is the main purpose of mitosis in living organisms?", Answer: "It produces two identical daughter cells for growth and repair of tissues"},
			{Question: "How does meiosis differ from mitosis in its outcome?", Answer: "Meiosis produces four sex cells with half the chromosomes, while mitosis produces two identical body cells"},
			{Question: "What happens to chromosomes before a cell begins to divide?", Answer: "Each chromosome is copied so that both daughter cells receive a complete set"},
			{Question: "Why do organisms need meiosis to reproduce sexually?", Answer: "It halves the chromosome number so offspring get one set from each parent"},
			{Question: "What are the four main phases of mitosis in order?", Answer: "Prophase, metaphase, anaphase, and telophase"},
		},
	},
	{
		patterns: []string{"photosynthesis"},
		cards: []domain.Flashcard{
			{Question: "What do plants need to carry out photosynthesis?", Answer: "Sunlight, water, and carbon dioxide, plus the green pigment chlorophyll to capture light energy"},
			{Question: "What are the two main products of photosynthesis?", Answer: "Glucose, which stores energy for the plant, and oxygen, which is released into the air"},
			{Question: "Where inside a plant cell does photosynthesis take place?", Answer: "In the chloroplasts, small structures that contain the green pigment chlorophyll"},
			{Question: "Why is photosynthesis important for animals as well as plants?", Answer: "It produces the oxygen animals breathe and forms the base of nearly every food chain"},
			{Question: "How does light intensity affect the rate of photosynthesis?", Answer: "More light speeds up photosynthesis until another factor, such as carbon dioxide, becomes limiting"},
		},
	},
	{
		patterns: []string{"world war ii", "wwii"},
		cards: []domain.Flashcard{
			{Question: "In which years did World War II begin and end?", Answer: "It began in 1939 with the invasion of Poland and ended in 1945"},
			{Question: "Which countries formed the main Axis powers during the war?", Answer: "Germany, Italy, and Japan"},
			{Question: "What event brought the United States into World War II?", Answer: "The Japanese attack on Pearl Harbor in December 1941"},
			{Question: "What was the D-Day invasion and why did it matter?", Answer: "The Allied landing in Normandy in June 1944. It opened a western front that led to Germany's defeat"},
			{Question: "Which leaders met at the Yalta Conference near the war's end?", Answer: "Roosevelt, Churchill, and Stalin, who planned the postwar reorganization of Europe"},
		},
	},
	{
		patterns: []string{"dna", "genetics"},
		cards: []domain.Flashcard{
			{Question: "What does DNA stand for and what does it do?", Answer: "Deoxyribonucleic acid. It stores the genetic instructions used to build and run living organisms"},
			{Question: "What shape is a DNA molecule usually described as?", Answer: "A double helix, like a twisted ladder with paired bases forming the rungs"},
			{Question: "What are the four bases found in DNA?", Answer: "Adenine, thymine, guanine, and cytosine, which pair as A with T and G with C"},
			{Question: "How are genes related to the traits an organism shows?", Answer: "Genes carry instructions for proteins, and those proteins shape traits like eye color or height"},
			{Question: "What is a mutation in the context of genetics?", Answer: "A change in the DNA sequence, which can be harmful, helpful, or have no effect"},
		},
	},
	{
		patterns: []string{"heart", "circulatory"},
		cards: []domain.Flashcard{
			{Question: "How many chambers does the human heart contain?", Answer: "Four chambers, namely two atria on top and two ventricles below"},
			{Question: "What is the difference between arteries and veins?", Answer: "Arteries carry blood away from the heart, while veins return blood back to it"},
			{Question: "Why does blood pass through the lungs during circulation?", Answer: "To drop off carbon dioxide and pick up fresh oxygen before returning to the heart"},
			{Question: "What role do red blood cells play in the body?", Answer: "They use the protein hemoglobin to carry oxygen from the lungs to every tissue"},
			{Question: "What do the valves inside the heart actually do?", Answer: "They keep blood flowing in one direction by closing after each beat"},
		},
	},
	{
		patterns: []string{"digestive"},
		cards: []domain.Flashcard{
			{Question: "What is the main job of the digestive system?", Answer: "To break food down into nutrients the body can absorb and use for energy and growth"},
			{Question: "Where does most nutrient absorption happen in the body?", Answer: "In the small intestine, whose walls are lined with tiny finger-like villi"},
			{Question: "What does stomach acid contribute to digestion?", Answer: "It breaks down food, activates digestive enzymes, and kills many harmful microbes"},
			{Question: "How does the large intestine finish the digestive process?", Answer: "It absorbs water and salts from leftover material and forms solid waste"},
		},
	},
	{
		patterns: []string{"respiratory"},
		cards: []domain.Flashcard{
			{Question: "What happens inside the alveoli of the lungs?", Answer: "Oxygen passes into the blood while carbon dioxide moves out to be exhaled"},
			{Question: "How does the diaphragm help a person breathe?", Answer: "It contracts and flattens to pull air in, then relaxes to push air out"},
			{Question: "What path does air follow from the nose to the lungs?", Answer: "It travels through the pharynx, larynx, and trachea, then into the bronchi and bronchioles"},
			{Question: "Why do breathing rates increase during heavy exercise?", Answer: "Working muscles need more oxygen and produce more carbon dioxide that must be removed"},
		},
	},
	{
		patterns: []string{"ecosystem"},
		cards: []domain.Flashcard{
			{Question: "What are the living and nonliving parts of an ecosystem called?", Answer: "Biotic factors are the living parts, and abiotic factors are the nonliving parts like water and sunlight"},
			{Question: "What role do producers play in an ecosystem?", Answer: "They make their own food from sunlight and form the base of every food chain"},
			{Question: "How do decomposers keep an ecosystem healthy?", Answer: "They break down dead material and return nutrients to the soil for plants to reuse"},
			{Question: "What is a food web in an ecosystem?", Answer: "A network of connected food chains showing how energy flows between organisms"},
			{Question: "What can happen when a top predator disappears from an ecosystem?", Answer: "Prey populations can grow unchecked, overgraze resources, and unbalance the whole system"},
		},
	},
	{
		patterns: []string{"atom", "periodic table"},
		cards: []domain.Flashcard{
			{Question: "What three particles make up an atom?", Answer: "Protons and neutrons in the nucleus, with electrons moving around it"},
			{Question: "How are elements arranged on the periodic table?", Answer: "In order of increasing atomic number, with similar elements grouped in columns"},
			{Question: "What does the atomic number of an element tell you?", Answer: "The number of protons in the nucleus of one atom of that element"},
			{Question: "Why do elements in the same group behave similarly?", Answer: "They have the same number of electrons in their outer shell, which controls how they react"},
			{Question: "What is the difference between an element and a compound?", Answer: "An element contains only one kind of atom, while a compound chemically combines two or more kinds"},
		},
	},
	{
		patterns: []string{"motion", "force", "gravity"},
		cards: []domain.Flashcard{
			{Question: "What does Newton's first law of motion describe?", Answer: "An object stays at rest or moves at constant speed unless an unbalanced force acts on it"},
			{Question: "How do force, mass, and acceleration relate to one another?", Answer: "Force equals mass times acceleration, so heavier objects need more force to speed up"},
			{Question: "What is gravity and what does it do?", Answer: "A force of attraction between masses. It pulls objects toward Earth and keeps planets in orbit"},
			{Question: "Why does a feather fall slower than a hammer on Earth?", Answer: "Air resistance pushes against the feather's large surface. Without air, both would land together"},
			{Question: "What is the difference between speed and velocity?", Answer: "Speed measures how fast something moves, while velocity also includes the direction of movement"},
		},
	},
	{
		patterns: []string{"algebra", "equation"},
		cards: []domain.Flashcard{
			{Question: "What does a variable represent in an algebraic equation?", Answer: "An unknown value, usually written as a letter such as x or y"},
			{Question: "What must you do to both sides of an equation?", Answer: "Apply the same operation to both sides so the equation stays balanced"},
			{Question: "How do you solve the equation x plus five equals twelve?", Answer: "Subtract five from both sides, which leaves x equal to seven"},
			{Question: "What is the order of operations used to simplify expressions?", Answer: "Parentheses, exponents, multiplication and division, then addition and subtraction"},
			{Question: "What does it mean to combine like terms?", Answer: "To add or subtract terms with the same variable part, such as 3x and 5x"},
		},
	},
	{
		patterns: []string{"geometry", "triangle"},
		cards: []domain.Flashcard{
			{Question: "What do the interior angles of a triangle add up to?", Answer: "They always add up to 180 degrees"},
			{Question: "What makes a triangle equilateral rather than isosceles?", Answer: "An equilateral triangle has three equal sides, while an isosceles triangle has exactly two"},
			{Question: "What does the Pythagorean theorem say about right triangles?", Answer: "The square of the hypotenuse equals the sum of the squares of the other two sides"},
			{Question: "How do you find the area of a triangle?", Answer: "Multiply the base by the height and divide the result by two"},
			{Question: "What is the difference between perimeter and area?", Answer: "Perimeter measures the distance around a shape, while area measures the surface inside it"},
		},
	},
}
